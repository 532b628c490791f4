package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/runready/internal/domain/forecast"
)

// ObjectConfig describes the S3 compatible bucket.
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Prefix    string
	UseSSL    bool
}

const bucketCheckTimeout = 10 * time.Second

// ObjectArchive uploads payloads to S3 compatible storage (R2, MinIO, S3).
type ObjectArchive struct {
	client *minio.Client
	bucket string
	prefix string
	logger *slog.Logger

	mu          sync.Mutex
	bucketReady bool
}

// NewObjectArchive constructs the storage adapter.
func NewObjectArchive(cfg ObjectConfig, logger *slog.Logger) (*ObjectArchive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	useSSL := cfg.UseSSL || strings.HasPrefix(strings.ToLower(cfg.Endpoint), "https")
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	return &ObjectArchive{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger.With("component", "archive.object"),
	}, nil
}

// ensureBucket creates the bucket on first use. Only a successful check is
// remembered; failures are retried by the next Put. The check runs detached
// from the caller's cancellation.
func (a *ObjectArchive) ensureBucket(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.bucketReady {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bucketCheckTimeout)
	defer cancel()

	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err == nil && exists {
		a.bucketReady = true
		return nil
	}
	err = a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	a.bucketReady = true
	return nil
}

// Put uploads the raw payload of f and returns its object key.
func (a *ObjectArchive) Put(ctx context.Context, f forecast.Forecast) (string, error) {
	if len(f.RawJSON) == 0 {
		return "", errors.New("forecast has no raw payload")
	}
	if err := a.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("ensure bucket %s: %w", a.bucket, err)
	}
	key := objectKey(a.prefix, f, uuid.New())
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(f.RawJSON), int64(len(f.RawJSON)), minio.PutObjectOptions{
		ContentType:      "application/json",
		DisableMultipart: true,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	a.logger.Debug("forecast payload archived", "key", key, "bytes", len(f.RawJSON))
	return key, nil
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

var _ forecast.Archive = (*ObjectArchive)(nil)
