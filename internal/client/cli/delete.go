package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) delete(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: delete <id>")
		return
	}

	if err := a.recordService.Delete(ctx, id); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Record %d deleted\n", id)
}
