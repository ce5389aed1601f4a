// Package common defines shared constants and sentinel errors used across
// client and server layers of EmoGo. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrStorage covers local persistence failures: the store is unavailable
	// or a write/delete did not go through.
	ErrStorage = errors.New("storage error")

	// ErrPermission indicates a required file or directory is not accessible.
	ErrPermission = errors.New("permission denied")

	// ErrUpload covers media read or media-host upload failures.
	ErrUpload = errors.New("upload error")

	// ErrRemote indicates a non-success HTTP status from the backend.
	ErrRemote = errors.New("remote error")

	// ErrSync indicates the backend could not be reached at all.
	ErrSync = errors.New("sync transport error")

	// ErrValidation indicates missing or malformed required fields.
	ErrValidation = errors.New("validation error")
)
