// Package media manages the directory of captured video files owned by the
// local record store. Files are copied in on save and removed on delete;
// nothing else mutates them.
package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/emogo-app/emogo/internal/common"
	"github.com/google/uuid"
)

// Store owns a single directory of video files.
type Store struct {
	dir string
}

// NewStore ensures dir exists and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: media directory %s", common.ErrPermission, dir)
		}
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the managed directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Import copies the file at src into the store under a fresh name,
// preserving the source extension, and returns the stored path.
func (s *Store) Import(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: %s", common.ErrPermission, src)
		}
		return "", fmt.Errorf("open source video: %w", err)
	}
	defer in.Close()

	name := fmt.Sprintf("video_%s%s", uuid.NewString(), filepath.Ext(src))
	dst := filepath.Join(s.dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create stored video: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("copy video: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("flush video: %w", err)
	}

	return dst, nil
}

// Read returns the full contents of a stored video file.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read video %s: %w", common.ErrUpload, path, err)
	}
	return data, nil
}

// Remove deletes a stored video file. A missing file is not an error.
func (s *Store) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove video %s: %w", path, err)
	}
	return nil
}
