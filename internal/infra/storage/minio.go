// Package storage implements the object storage uploader on MinIO.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"terraverde/config"
	"terraverde/internal/domain/service"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// minioStorage implements service.ObjectStorage.
type minioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStorage creates the MinIO-backed uploader.
func NewMinioStorage(cfg *config.Config) (service.ObjectStorage, error) {
	if cfg.Storage == nil || cfg.Storage.Endpoint == "" {
		return nil, errors.New("storage endpoint is required")
	}
	if cfg.Storage.AccessKey == "" || cfg.Storage.SecretKey == "" {
		return nil, errors.New("storage accessKey and secretKey are required")
	}

	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	bucket := cfg.Storage.Bucket
	if bucket == "" {
		bucket = "terraverde"
	}

	return &minioStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// UploadBase64 decodes the payload, stores it under a unique key derived
// from filename, and returns the public URL to persist on the owning row.
func (s *minioStorage) UploadBase64(ctx context.Context, payload, filename, contentType string) (string, error) {
	// Clients may send data URLs; strip the "data:...;base64," prefix.
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode base64 payload")
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := objectKey(filename)
	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", errors.Wrapf(err, "upload %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// objectKey builds a collision-free key that keeps the original extension.
func objectKey(filename string) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(path.Base(filename), ext)
	if base == "" || base == "." {
		base = "upload"
	}

	return fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
}
