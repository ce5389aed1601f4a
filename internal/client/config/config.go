// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the EmoGo CLI.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - DatabasePath: path of the local sqlite database file.
//   - DataDir: directory holding captured videos and export files.
//   - AuthToken: shared bearer token presented to the backend; empty when
//     the backend runs without auth.
//   - UploadTimeout: per-request timeout for media uploads. Uploads carry
//     whole videos in one request, so this is tens of seconds, not an
//     interactive timeout.
type Config struct {
	ServerURL     string
	DatabasePath  string
	DataDir       string
	AuthToken     string
	UploadTimeout time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.DatabasePath = "emogo.db"
	c.DataDir = "data"
	c.AuthToken = ""
	c.UploadTimeout = 60 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
