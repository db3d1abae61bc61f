package service

import (
	"context"
	"io"
)

// BlobStorage stores uploaded files and hands back their public URL.
type BlobStorage interface {
	// Upload writes the content under name and returns its public URL.
	Upload(ctx context.Context, content io.Reader, name, contentType string) (string, error)

	// Delete removes the object behind url. Empty, foreign and missing urls are no-ops.
	Delete(ctx context.Context, url string) error

	Close() error
}
