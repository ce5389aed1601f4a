package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) upload(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: upload <id>")
		return
	}

	resp, err := a.recordService.UploadOne(ctx, id)
	if err != nil {
		// The local save already committed; an upload failure leaves the
		// record local-only.
		log.Printf("upload failed, record kept locally: %v", err)
		return
	}

	fmt.Printf("Record %d uploaded: %s\n", id, resp.Message)
}

func (a *App) sync(ctx context.Context) {
	resp, err := a.recordService.SyncAll(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if resp.SyncedCount == 0 && resp.ErrorCount == 0 {
		fmt.Println("No records to sync.")
		return
	}

	fmt.Printf("Synced %d records, %d errors\n", resp.SyncedCount, resp.ErrorCount)
	for _, e := range resp.Results.Errors {
		fmt.Printf("  record %s: %s\n", e.RecordID, e.Error)
	}
}

func (a *App) health(ctx context.Context) {
	if err := a.recordService.Health(ctx); err != nil {
		fmt.Printf("Backend unreachable: %v\n", err)
		return
	}
	fmt.Println("Backend is up.")
}
