// Package storage archives uploaded photos in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"

	"jild/config"
	"jild/internal/domain/lifecycle"
	"jild/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type photoStore struct {
	bucket *blob.Bucket
}

// Params defines the dependencies of the photo store
type Params struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStore opens storage.bucketURL (mem://, file://, gs://) and closes it on stop.
func NewPhotoStore(params Params) (service.PhotoStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}
	if cfg.Prefix != "" {
		bucket = blob.PrefixedBucket(bucket, cfg.Prefix)
	}

	params.LC.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing photo bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketPhotoStore(bucket), nil
}

// NewBucketPhotoStore wraps an already opened bucket.
func NewBucketPhotoStore(bucket *blob.Bucket) service.PhotoStore {
	return &photoStore{bucket: bucket}
}

// Save writes img under key with its content type.
func (s *photoStore) Save(ctx context.Context, key string, img service.Image) error {
	opts := &blob.WriterOptions{
		ContentType: img.ContentType,
		Metadata:    map[string]string{"filename": img.Filename},
	}
	if err := s.bucket.WriteAll(ctx, key, img.Data, opts); err != nil {
		return errors.Wrapf(err, "failed to write photo %s", key)
	}

	return nil
}
