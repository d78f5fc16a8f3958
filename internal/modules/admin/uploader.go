package admin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Code0plux/Website/internal/storage"
)

// File is one user-selected file in an upload batch.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type FileError struct {
	Name string
	Err  error
}

// BatchResult reports an upload batch. URLs holds the public URLs of the
// files that made it, in the order they were selected; Failed names the
// ones that did not.
type BatchResult struct {
	URLs   []string
	Failed []FileError
}

type Uploader struct {
	store storage.Storage
	log   *slog.Logger
}

func NewUploader(store storage.Storage, log *slog.Logger) *Uploader {
	return &Uploader{store: store, log: log}
}

// UploadBatch pushes each file to the object store and resolves its
// public URL. A failed file is recorded and the batch continues; one bad
// file does not abort the rest.
func (u *Uploader) UploadBatch(ctx context.Context, files []File) BatchResult {
	var res BatchResult
	for _, f := range files {
		key := newObjectKey(f.Name)
		err := u.store.Upload(ctx, key, f.Reader, storage.UploadOptions{
			ContentType: f.ContentType,
			Size:        f.Size,
		})
		if err != nil {
			u.log.Error("image_upload_failed",
				slog.String("file", f.Name),
				slog.Any("err", err),
			)
			res.Failed = append(res.Failed, FileError{Name: f.Name, Err: err})
			continue
		}
		res.URLs = append(res.URLs, u.store.PublicURL(key))
	}
	return res
}

// newObjectKey builds a collision-resistant storage key: upload millis
// plus a random component, keeping the original extension when it is a
// known image type.
func newObjectKey(filename string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), safeExt(filename))
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}
