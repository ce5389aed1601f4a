// Package models defines client-side data models used by the EmoGo CLI.
package models

import "time"

// Record is one mood-capture entry persisted in the local store.
type Record struct {
	// ID is the locally generated identifier (autoincrement rowid). It is
	// also the idempotency key used by the cloud side.
	ID int64

	// VideoPath is the absolute path of the captured video inside the
	// managed media directory.
	VideoPath string

	// Sentiment is the mood value on the 1..5 scale.
	Sentiment int

	// Latitude and Longitude are the capture coordinates, nil when location
	// was unavailable or denied.
	Latitude  *float64
	Longitude *float64

	// Timestamp is the capture time in epoch milliseconds.
	Timestamp int64

	// CreatedAt is the ISO-8601 creation time, generated at save time.
	CreatedAt string
}

// RecordedAt returns the capture timestamp as time.Time.
func (r Record) RecordedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}
