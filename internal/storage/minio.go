package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/arnavk03/staffdir/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore wraps the MinIO client for storing employee images. Objects are
// publicly retrievable under <publicURL>/<bucket>/<object>.
type ImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewImageStore connects to MinIO and makes sure the bucket exists. Bucket
// creation is idempotent, so running it on every startup is fine.
func NewImageStore(cfg *config.Config) (*ImageStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("Created bucket: %s", cfg.MinioBucket)
	}

	return &ImageStore{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: cfg.MinioPublicURL,
	}, nil
}

// Put stores an object and returns its fully qualified public URL.
func (s *ImageStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}
