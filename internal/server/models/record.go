// Package models defines server-side data models persisted in the database.
package models

import "time"

// Record is one cloud-side mood entry. ID equals the client-generated local
// identifier and is the natural upsert key; there is no server-side id.
type Record struct {
	ID             string
	Sentiment      string
	SentimentValue int

	// Latitude and Longitude are nil when the capture had no location.
	Latitude  *float64
	Longitude *float64

	// RecordedAt is the capture time reported by the client.
	RecordedAt time.Time

	// VideoURL is the media host URL, nil until an upload succeeds.
	VideoURL *string
	// VideoStorageKey is the media host reference id used for later
	// deletion, nil until an upload succeeds.
	VideoStorageKey *string

	// IsUploaded marks that the record went through a sync, regardless of
	// whether its media made it to the host.
	IsUploaded bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
