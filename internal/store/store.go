package store

import (
	"fmt"
	"os"
	"path/filepath"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
)

// ConfigStore reads and writes configuration documents as text blobs.
// The file-backed implementation is the only one the CLI uses; the
// interface exists so workflows can be tested against an in-memory store.
type ConfigStore interface {
	Read(path string) (string, error)
	Write(path string, text string) error
	EnsureExists(path string) error
}

// FileStore is the file-system backed ConfigStore.
type FileStore struct{}

// NewFileStore returns a store backed by the local file system.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Read returns the document at path. Returns ErrNotFound if the file does
// not exist and ErrPermissionDenied if it cannot be opened.
func (s *FileStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", eserrors.ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", eserrors.ErrPermissionDenied, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the document at path. Secrets documents are written with
// 0600 permissions.
func (s *FileStore) Write(path string, text string) error {
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %s", eserrors.ErrPermissionDenied, path)
		}
		return fmt.Errorf("%w: %s: %v", eserrors.ErrDiskError, path, err)
	}
	return nil
}

// EnsureExists creates the parent directory and an empty file at path if
// absent. An existing file is left untouched.
func (s *FileStore) EnsureExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %s", eserrors.ErrPermissionDenied, path)
		}
		return fmt.Errorf("%w: %s: %v", eserrors.ErrDiskError, path, err)
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	return s.Write(path, "")
}
