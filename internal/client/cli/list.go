package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/emogo-app/emogo/internal/sentiment"
)

func (a *App) list(ctx context.Context) {
	rows, err := a.recordService.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(rows) == 0 {
		fmt.Println("No records yet.")
		return
	}

	for _, r := range rows {
		fmt.Printf("%d\t%s\t%s\n", r.ID, r.RecordedAt().Format("2006-01-02 15:04"), sentiment.Label(r.Sentiment))
	}
}

func (a *App) show(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: show <id>")
		return
	}

	r, err := a.recordService.Get(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("id:        %d\n", r.ID)
	fmt.Printf("sentiment: %s (%d)\n", sentiment.Label(r.Sentiment), r.Sentiment)
	fmt.Printf("recorded:  %s\n", r.RecordedAt().Format("2006-01-02 15:04:05"))
	fmt.Printf("video:     %s\n", r.VideoPath)
	if r.Latitude != nil && r.Longitude != nil {
		fmt.Printf("location:  %f, %f\n", *r.Latitude, *r.Longitude)
	}
}
