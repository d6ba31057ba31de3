// Package storage places uploaded files on local disk, namespaced by
// category bucket (uploads/evidence/...), and derives file sizes for the
// records that reference them.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes files under a root directory, one subdirectory per bucket.
type Store struct {
	Root string
}

// NewStore returns a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: empty root dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Root: dir}, nil
}

// Save streams r into the bucket under a random name that keeps the
// original extension, and returns the stored path. The random prefix keeps
// concurrent uploads of identically named files apart.
func (s *Store) Save(bucket, originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.Root, filepath.Base(bucket))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString()
	if ext := filepath.Ext(originalName); ext != "" && len(ext) <= 16 {
		name += ext
	}
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// SizeOf stats a stored file and returns its byte size. It is the named
// fallible step behind derived evidence sizes: callers that must not fail
// on an unreadable file check the error and leave the size unset.
func SizeOf(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
