package storage

import (
	"context"
	"io"
)

// Storage defines the interface for media object storage
type Storage interface {
	// Save stores an object under key
	Save(ctx context.Context, key, contentType string, body io.Reader) error

	// Delete removes the object under key
	Delete(ctx context.Context, key string) error

	// URL returns the permanent public URL for key
	URL(key string) string

	// PresignedURL returns a temporary signed URL for key
	PresignedURL(ctx context.Context, key string) (string, error)
}
