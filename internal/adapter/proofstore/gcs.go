package proofstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSStore writes proofs as objects in a Cloud Storage bucket.
type GCSStore struct {
	bucket *storage.BucketHandle
	name   string
}

// NewGCSStore binds a store to bucket on client.
func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{bucket: client.Bucket(bucket), name: bucket}
}

func (s *GCSStore) Save(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload proof: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize proof upload: %w", err)
	}
	return s.URL(name), nil
}

func (s *GCSStore) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	err := s.bucket.Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete proof: %w", err)
	}
	return nil
}

// URL is the public address of object name.
func (s *GCSStore) URL(name string) string {
	return fmt.Sprintf("%s/%s/%s", gcsPublicHost, s.name, name)
}
