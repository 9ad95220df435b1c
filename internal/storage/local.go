package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrS3NotConfigured is returned when an upload is attempted without S3
// configuration.
var ErrS3NotConfigured = errors.New("S3 storage is not configured")

// LocalStorage implements the Storage interface using local disk. Working
// files are placed in a configurable directory; uploads are unsupported
// unless wrapped with S3Storage.
type LocalStorage struct {
	tempDir string
}

// NewLocalStorage creates a new LocalStorage instance. If tempDir is empty,
// a silencecut subdirectory of os.TempDir() is used. The directory is created
// if it doesn't exist.
func NewLocalStorage(tempDir string) (*LocalStorage, error) {
	if tempDir == "" {
		tempDir = filepath.Join(os.TempDir(), "silencecut")
	}

	if err := os.MkdirAll(tempDir, 0750); err != nil {
		return nil, fmt.Errorf("create temp directory: %w", err)
	}

	return &LocalStorage{tempDir: tempDir}, nil
}

// TempDir returns the temporary directory path.
func (s *LocalStorage) TempDir() string {
	return s.tempDir
}

// WorkPath returns the path for a new working artifact inside the temp
// directory.
func (s *LocalStorage) WorkPath(name string) string {
	return filepath.Join(s.tempDir, name)
}

// Cleanup removes the specified working files. Missing files are not an
// error; other failures are collected and the first one returned after all
// paths have been attempted.
func (s *LocalStorage) Cleanup(ctx context.Context, paths []string) error {
	var firstErr error
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = fmt.Errorf("remove working file %s: %w", p, err)
			}
		}
	}
	return firstErr
}

// Upload is not supported by LocalStorage and returns ErrS3NotConfigured.
func (s *LocalStorage) Upload(_ context.Context, _ string, _ io.Reader) (string, error) {
	return "", ErrS3NotConfigured
}

// Compile-time check that LocalStorage implements Storage.
var _ Storage = (*LocalStorage)(nil)
