package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
)

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to EmoGo CLI (type 'help' for commands)")

	for {
		fmt.Print("emogo> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: record, list, show, delete, export, upload, sync, health, exit")

		case "record":
			a.record(ctx)
		case "list":
			a.list(ctx)
		case "show":
			a.show(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "export":
			a.export(ctx)
		case "upload":
			a.upload(ctx, args)
		case "sync":
			a.sync(ctx)
		case "health":
			a.health(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for commands.")
		}
	}
}
