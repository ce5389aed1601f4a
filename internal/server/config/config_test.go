package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":5000", c.EndpointAddrHTTP)
	assert.Contains(t, c.DatabaseDSN, "postgres://")
	assert.Empty(t, c.AuthToken)
	assert.Equal(t, 60*time.Second, c.MediaUploadTimeout)
	assert.Equal(t, "emogo", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.NotEmpty(t, c.S3BaseEndpoint)
}
