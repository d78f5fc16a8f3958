package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary stores images as Cloudinary assets. The caller's key becomes
// the asset public ID (minus extension; Cloudinary appends its own).
type Cloudinary struct {
	cld       *cloudinary.Cloudinary
	CloudName string
	Folder    string
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld, CloudName: cloudName, Folder: strings.Trim(folder, "/")}, nil
}

func (c *Cloudinary) publicID(key string) string {
	// Cloudinary derives the format from the content; the extension must
	// not be part of the public ID or URLs get a double suffix.
	if i := strings.LastIndex(key, "."); i > 0 {
		key = key[:i]
	}
	if c.Folder == "" {
		return key
	}
	return c.Folder + "/" + key
}

func (c *Cloudinary) Upload(ctx context.Context, key string, r io.Reader, opts UploadOptions) error {
	overwrite := false
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     c.publicID(key),
		ResourceType: "image",
		Overwrite:    &overwrite,
	})
	if err != nil {
		return fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.SecureURL == "" {
		return fmt.Errorf("cloudinary upload: no URL returned for %s", key)
	}
	return nil
}

func (c *Cloudinary) PublicURL(key string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", c.CloudName, c.publicID(key))
}

func (c *Cloudinary) Delete(ctx context.Context, key string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: c.publicID(key)})
	return err
}

func (c *Cloudinary) String() string { return fmt.Sprintf("cloudinary(%s/%s)", c.CloudName, c.Folder) }
