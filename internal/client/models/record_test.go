package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordedAt(t *testing.T) {
	r := Record{Timestamp: 1714557600000}
	assert.Equal(t, time.UnixMilli(1714557600000), r.RecordedAt())
	assert.Equal(t, "2024-05-01T10:00:00Z", r.RecordedAt().UTC().Format(time.RFC3339))
}
