package storage

import (
	"context"
	"io"
)

type UploadOptions struct {
	ContentType string
	Size        int64
}

// Storage is the hosted object store the admin panel uploads product
// images into. Keys are chosen by the caller; PublicURL must resolve any
// key that a successful Upload accepted.
type Storage interface {
	Upload(ctx context.Context, key string, r io.Reader, opts UploadOptions) error
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}
