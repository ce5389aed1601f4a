// Package cli implements the interactive EmoGo command-line client.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/emogo-app/emogo/internal/client"
	"github.com/emogo-app/emogo/internal/client/api"
	"github.com/emogo-app/emogo/internal/client/config"
	"github.com/emogo-app/emogo/internal/client/media"
	"github.com/emogo-app/emogo/internal/client/repositories/records"
	"github.com/emogo-app/emogo/internal/client/services"
	"github.com/emogo-app/emogo/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config        *config.Config
	recordService services.RecordService
	reader        *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	mediaStore, err := media.NewStore(filepath.Join(c.DataDir, "videos"))
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerURL, c.AuthToken, c.UploadTimeout)
	repo := records.NewSQLiteRepository(db)
	logger := logging.NewDefault()

	rs := services.NewRecordService(apiClient, repo, mediaStore, c.DataDir, logger)

	return &App{config: c, recordService: rs, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
