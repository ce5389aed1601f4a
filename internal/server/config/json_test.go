package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":   ":8080",
		"database_dsn":         "postgres://p",
		"auth_token":           "tok",
		"media_upload_timeout": "30s",
		"s3_root_user":         "root",
		"s3_root_password":     "pw",
		"s3_bucket":            "bkt",
		"s3_region":            "eu-west-1",
		"s3_base_endpoint":     "http://minio:9000/",
	})

	t.Run("loads from -config flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://p", cfg.DatabaseDSN)
		assert.Equal(t, "tok", cfg.AuthToken)
		assert.Equal(t, 30*time.Second, cfg.MediaUploadTimeout)
		assert.Equal(t, "root", cfg.S3RootUser)
		assert.Equal(t, "bkt", cfg.S3Bucket)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrHTTP: ":1"}
		parseJson(cfg)

		assert.Equal(t, ":1", cfg.EndpointAddrHTTP)
	})
}
