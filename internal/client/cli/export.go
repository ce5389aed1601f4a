package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) export(ctx context.Context) {
	res, err := a.recordService.Export(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if res.Count == 0 {
		fmt.Println("No records to export.")
		return
	}

	fmt.Printf("Exported %d records\n", res.Count)
	fmt.Printf("  JSON: %s\n", res.JSONPath)
	fmt.Printf("  CSV:  %s\n", res.CSVPath)
}
