package export

import (
	"context"
	"log/slog"
	"path"

	"launchpad/config"
	"launchpad/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

type blobStorage struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// OpenBlobStorage opens the bucket behind a gocloud blob URL.
func OpenBlobStorage(ctx context.Context, bucketURL, prefix string, logger *slog.Logger) (service.ExportStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open export bucket %s", bucketURL)
	}

	return &blobStorage{bucket: bucket, prefix: prefix, logger: logger}, nil
}

// NewExportStorage wires the export bucket into the app lifecycle. It returns
// nil when no bucket is configured, which disables persisted exports.
func NewExportStorage(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.ExportStorage, error) {
	if cfg.Export == nil || cfg.Export.BucketURL == "" {
		logger.Info("Export bucket not configured, persisted exports disabled")

		return nil, nil
	}

	storage, err := OpenBlobStorage(ctx, cfg.Export.BucketURL, cfg.Export.Prefix, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Export bucket opened", slog.String("bucket_url", cfg.Export.BucketURL))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

func (s *blobStorage) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}

	return path.Join(s.prefix, key)
}

// Put writes data under key, replacing any previous object.
func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	objectKey := s.objectKey(key)
	err := s.bucket.WriteAll(ctx, objectKey, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "write export %s", objectKey)
	}

	s.logger.DebugContext(ctx, "Export written",
		slog.String("key", objectKey),
		slog.Int("size", len(data)),
	)

	return nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
