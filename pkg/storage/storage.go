package storage

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// FileStore persists uploaded files and reports the URL they are served from.
type FileStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// NewKey returns a collision-free object key under uploads/ with the given extension.
func NewKey(ext string) string {
	return "uploads/" + uuid.NewString() + ext
}
