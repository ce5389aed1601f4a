package config

import (
	"flag"
	"os"
	"time"

	"github.com/emogo-app/emogo/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   backend base URL (e.g., "http://127.0.0.1:5000")
//	-f string   sqlite database file path
//	-d string   data directory for videos and exports
//	-k string   shared bearer token for the backend
//	-t int      upload timeout, seconds
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f", "-d", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "s", config.ServerURL, "backend base URL")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "sqlite database file")
	fs.StringVar(&config.DataDir, "d", config.DataDir, "data directory")
	fs.StringVar(&config.AuthToken, "k", config.AuthToken, "backend auth token")

	uploadTimeout := fs.Int("t", int(config.UploadTimeout.Seconds()), "upload timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.UploadTimeout = time.Duration(*uploadTimeout) * time.Second
}
