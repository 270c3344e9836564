// Package objectstore mirrors renditions into an S3 compatible bucket
// (MinIO) so a CDN can serve them.
package objectstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photofolio/internal/config"
)

type Mirror struct {
	client *minio.Client
	bucket string
}

// New connects to the endpoint and creates the bucket when it is missing.
func New(ctx context.Context, cfg *config.Mirror) (*Mirror, error) {
	const op = "storage.objectstore.New"

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &Mirror{client: client, bucket: cfg.Bucket}, nil
}

func (m *Mirror) Put(ctx context.Context, key string, data []byte, contentType string) error {
	const op = "storage.objectstore.Put"

	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Mirror) Remove(ctx context.Context, key string) error {
	const op = "storage.objectstore.Remove"

	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemovePrefix deletes every object under prefix and reports the first error.
func (m *Mirror) RemovePrefix(ctx context.Context, prefix string) error {
	const op = "storage.objectstore.RemovePrefix"

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var firstErr error

	objects := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return fmt.Errorf("%s: %w", op, obj.Err)
		}

		err := m.client.RemoveObject(ctx, m.bucket, obj.Key, minio.RemoveObjectOptions{})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %s: %w", op, obj.Key, err)
		}
	}

	return firstErr
}
