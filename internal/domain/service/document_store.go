package service

import (
	"context"

	"diploma/internal/errors"
)

// ErrDocumentNotFound is returned when no cached document exists for a key.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore caches rendered certificate documents. The store is a pure
// convenience layer: a miss simply means the document is rendered on demand,
// and losing the bucket never affects issued certificates.
type DocumentStore interface {
	// Put writes the rendered document under the given key, overwriting any
	// previous version.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the cached document bytes, or ErrDocumentNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Close releases the underlying bucket.
	Close() error
}
