package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) record(ctx context.Context) {
	videoPath, err := a.promptString("Video file path")
	if err != nil {
		log.Println(err.Error())
		return
	}

	sentiment, err := a.promptInt("Sentiment (1=very bad .. 5=very good)")
	if err != nil {
		log.Println("sentiment must be a number between 1 and 5")
		return
	}

	lat, err := a.promptOptionalFloat("Latitude (empty to skip)")
	if err != nil {
		log.Println("invalid latitude")
		return
	}
	lon, err := a.promptOptionalFloat("Longitude (empty to skip)")
	if err != nil {
		log.Println("invalid longitude")
		return
	}

	id, err := a.recordService.Save(ctx, videoPath, sentiment, lat, lon)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Record saved with id %d\n", id)
}
