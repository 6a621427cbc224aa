package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded blobs live. The local filesystem is the
// default; the S3 implementation targets S3-compatible stores (AWS, R2).
type Storage interface {
	// Save writes the blob under key and returns its public URL. The key
	// doubles as the deletion handle.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the blob for key. A blob that is already gone is not
	// an error; metadata cleanup must never be blocked by a missing file.
	Delete(ctx context.Context, key string) error
}
