package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/emogo-app/emogo/internal/flagx"
	"github.com/emogo-app/emogo/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. timex.Duration accepts both string values such as
// "60s" and integer nanoseconds.
type JsonConfig struct {
	ServerURL     string         `json:"server_url"`
	DatabasePath  string         `json:"database_path"`
	DataDir       string         `json:"data_dir"`
	AuthToken     string         `json:"auth_token"`
	UploadTimeout timex.Duration `json:"upload_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. The file must be valid JSON; failures panic,
// matching the fail-fast policy for explicit configuration.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerURL = c.ServerURL
	config.DatabasePath = c.DatabasePath
	config.DataDir = c.DataDir
	config.AuthToken = c.AuthToken
	config.UploadTimeout = time.Duration(c.UploadTimeout.Duration)
}
