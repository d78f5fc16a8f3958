package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local keeps uploads on the web server's own disk. Used in development;
// production points STORAGE_DRIVER at s3 or cloudinary.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (l *Local) Upload(ctx context.Context, key string, r io.Reader, opts UploadOptions) error {
	_ = ctx

	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return err
	}

	// Keys come from the upload session; strip any path component anyway.
	dstPath := filepath.Join(l.BaseDir, filepath.Base(key))

	f, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (l *Local) PublicURL(key string) string {
	return l.URLPrefix + "/" + filepath.Base(key)
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx
	return os.Remove(filepath.Join(l.BaseDir, filepath.Base(key)))
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
