// Package supabase downloads files from a private Supabase storage bucket.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// ErrStorageDisabled is returned by Disabled for every download.
var ErrStorageDisabled = errors.New("file storage is not configured")

// Config holds bucket access settings.
type Config struct {
	URL    string // e.g. https://<project>.supabase.co/storage/v1
	Key    string // service role key
	Bucket string
}

// Bucket downloads objects from one storage bucket.
type Bucket struct {
	client *storage_go.Client
	bucket string
}

// NewBucket creates a bucket client. The key is sent as both apikey and bearer token.
func NewBucket(cfg Config) (*Bucket, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("storage url is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	headers := map[string]string{"apikey": cfg.Key}
	client := storage_go.NewClient(strings.TrimRight(cfg.URL, "/"), cfg.Key, headers)

	return &Bucket{client: client, bucket: cfg.Bucket}, nil
}

// Download returns the raw bytes stored at path.
func (b *Bucket) Download(ctx context.Context, path string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}

	// storage-go has no context support; abandon the call on cancellation.
	done := make(chan result, 1)
	go func() {
		data, err := b.client.DownloadFile(b.bucket, strings.TrimLeft(path, "/"))
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("download %s: %w", path, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("download %s: %w", path, r.err)
		}
		return r.data, nil
	}
}

// Disabled is used when no storage is configured; every CV then extracts to "".
type Disabled struct{}

// Download always fails with ErrStorageDisabled.
func (Disabled) Download(_ context.Context, path string) ([]byte, error) {
	return nil, fmt.Errorf("download %s: %w", path, ErrStorageDisabled)
}
