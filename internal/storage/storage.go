// Package storage provides working-file placement and final artifact
// delivery. It defines the Storage interface (port) with a local-disk
// implementation and an S3 decorator for uploading cleaned outputs.
package storage

import (
	"context"
	"io"
)

// Storage defines where working files live during processing and how final
// artifacts are optionally published.
type Storage interface {
	// WorkPath returns the path for a new working artifact with the given
	// name inside the storage's temp directory. The file is not created.
	WorkPath(name string) string

	// Cleanup removes the specified working files. It continues past
	// individual failures, returning the first error encountered.
	Cleanup(ctx context.Context, paths []string) error

	// Upload publishes data under key and returns the public URL.
	// Returns ErrS3NotConfigured when no upload backend is configured.
	Upload(ctx context.Context, key string, data io.Reader) (url string, err error)
}
