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
	EndpointAddrHTTP   string         `json:"endpoint_addr_http"`
	DatabaseDSN        string         `json:"database_dsn"`
	AuthToken          string         `json:"auth_token"`
	MediaUploadTimeout timex.Duration `json:"media_upload_timeout"`
	S3RootUser         string         `json:"s3_root_user"`
	S3RootPassword     string         `json:"s3_root_password"`
	S3Bucket           string         `json:"s3_bucket"`
	S3Region           string         `json:"s3_region"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. An unreadable or invalid file panics, matching
// the fail-fast policy for explicit configuration.
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

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.AuthToken = c.AuthToken
	config.MediaUploadTimeout = time.Duration(c.MediaUploadTimeout.Duration)
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
