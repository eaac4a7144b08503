// Package storage caches rendered certificate documents in a blob bucket.
package storage

import (
	"context"
	"log/slog"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gocloud.dev/gcerrors"

	"diploma/config"
	"diploma/internal/domain/service"
	"diploma/internal/errors"
)

// blobDocumentStore stores rendered documents keyed by certificate ID so the
// render worker can pre-render and the API can serve cached bytes.
type blobDocumentStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewDocumentStore opens the configured bucket. When no storage is configured
// it returns a no-op store and every read misses, so callers render on demand.
func NewDocumentStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.DocumentStore, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		logger.Info("document storage not configured, rendering on demand only")
		return &noopDocumentStore{}, nil
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open document bucket %q", cfg.Storage.BucketURL)
	}

	return &blobDocumentStore{bucket: bucket, logger: logger}, nil
}

func (s *blobDocumentStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "write document %q", key)
	}

	s.logger.Debug("stored rendered document", slog.String("key", key), slog.Int("bytes", len(data)))

	return nil
}

func (s *blobDocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrDocumentNotFound
		}
		return nil, errors.Wrapf(err, "read document %q", key)
	}

	return data, nil
}

func (s *blobDocumentStore) Close() error {
	return s.bucket.Close()
}

// noopDocumentStore is used when no bucket is configured.
type noopDocumentStore struct{}

func (*noopDocumentStore) Put(context.Context, string, []byte, string) error {
	return nil
}

func (*noopDocumentStore) Get(context.Context, string) ([]byte, error) {
	return nil, service.ErrDocumentNotFound
}

func (*noopDocumentStore) Close() error {
	return nil
}
