package ports

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded media and returns its public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
