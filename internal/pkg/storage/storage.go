// Package storage holds employee photo files. It is a side collaborator:
// read paths never depend on it, and a failed upload never blocks the
// employee record itself.
package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload writes a file and returns the stored path/key.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored path.
	URL(path string) string
}
