// Package media implements the upload gateway that stores video bytes on an
// S3-compatible host and hands back durable references.
package media

import "context"

// UploadResult is the durable reference returned by a successful upload.
type UploadResult struct {
	// URL is the stable object URL.
	URL string
	// Key is the media-host reference id, used for later deletion.
	Key string
}

// Gateway is the pass-through to the external media host. Media bytes are
// opaque to it.
type Gateway interface {
	// Upload stores data under key and returns its durable reference.
	Upload(ctx context.Context, key string, data []byte) (*UploadResult, error)

	// Delete removes a previously uploaded object.
	Delete(ctx context.Context, key string) error

	// PresignGet returns a temporary download URL for key. With
	// forceDownload the URL instructs browsers to save rather than play.
	PresignGet(ctx context.Context, key string, forceDownload bool) (string, error)
}
