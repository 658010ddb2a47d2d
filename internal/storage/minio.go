// Package storage is the object-store adapter for uploaded documents and
// export artifacts.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
)

// maxObjectBytes bounds single-object reads during merge fetches.
const maxObjectBytes = 64 << 20

// MinioStore stores documents in one bucket and serves them by public URL.
type MinioStore struct {
	client   *minio.Client
	endpoint string
	bucket   string
	useSSL   bool
	logger   *slog.Logger
}

func NewMinioStore(cfg common.StorageConfig, logger *slog.Logger) (*MinioStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinioStore{
		client:   client,
		endpoint: cfg.Endpoint,
		bucket:   cfg.Bucket,
		useSSL:   cfg.UseSSL,
		logger:   logger,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

// Put writes data under key and returns the object's public URL.
func (s *MinioStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %v: %w", key, err, common.ErrStorage)
	}
	s.logger.Info("storage.put", "key", key, "bytes", len(data))
	return s.PublicURL(key), nil
}

// StoreUpload persists an uploaded document under a fresh random key that
// keeps the original extension, and returns (key, public URL).
func (s *MinioStore) StoreUpload(ctx context.Context, originalName string, data []byte, contentType string) (string, string, error) {
	ext := constants.NormalizeExt(filepath.Ext(originalName))
	if !constants.IsAllowedExt(ext) {
		return "", "", fmt.Errorf("unsupported file type %q: %w", ext, common.ErrInvalidInput)
	}
	key := uuid.New().String() + "." + ext
	url, err := s.Put(ctx, key, data, contentType)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

// Fetch reads an object's bytes by its public URL. Reads are bounded; an
// object larger than the cap fails rather than exhausting memory.
func (s *MinioStore) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	key, err := s.keyFromURL(rawURL)
	if err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %v: %w", key, err, common.ErrStorage)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxObjectBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read object %s: %v: %w", key, err, common.ErrStorage)
	}
	if len(data) > maxObjectBytes {
		return nil, fmt.Errorf("object %s exceeds %d bytes: %w", key, maxObjectBytes, common.ErrStorage)
	}
	return data, nil
}

// Delete removes an object by key.
func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %v: %w", key, err, common.ErrStorage)
	}
	return nil
}

// PublicURL builds the object's public URL; the bucket policy must allow
// anonymous reads for it to resolve outside this process.
func (s *MinioStore) PublicURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

// keyFromURL extracts the object key from a public URL of this store's
// bucket. Foreign URLs are rejected.
func (s *MinioStore) keyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse document url %q: %w", rawURL, common.ErrInvalidInput)
	}
	prefix := "/" + s.bucket + "/"
	if u.Host != s.endpoint || !strings.HasPrefix(u.Path, prefix) {
		return "", fmt.Errorf("document url %q is outside bucket %s: %w", rawURL, s.bucket, common.ErrInvalidInput)
	}
	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", fmt.Errorf("document url %q has no object key: %w", rawURL, common.ErrInvalidInput)
	}
	return key, nil
}
