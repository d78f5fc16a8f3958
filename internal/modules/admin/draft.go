// Package admin holds the editing session behind the admin panel: one
// mutable product draft per signed-in admin, carried across form
// round-trips until it is submitted or cancelled.
package admin

import (
	"context"
	"errors"

	"github.com/Code0plux/Website/internal/modules/catalog"
)

var (
	// ErrNoImages rejects a submit before any gateway call is made.
	ErrNoImages = errors.New("draft has no images")
	// ErrUploadInFlight rejects re-entrant upload batches and submits
	// that race a running batch. One batch at a time, per draft.
	ErrUploadInFlight = errors.New("an upload batch is already running")
)

type Fields struct {
	Name        string
	Price       string
	Description string
}

// Draft is the admin form's server-side state. A zero Draft is create
// mode with empty fields. Drafts are not safe for concurrent use; the
// Store serializes access.
type Draft struct {
	EditingID     string
	Fields        Fields
	PendingImages []string
	uploading     bool
}

// EditMode reports whether a submit will update an existing product
// rather than insert a new one.
func (d *Draft) EditMode() bool { return d.EditingID != "" }

func (d *Draft) Uploading() bool { return d.uploading }

// BeginEdit loads an existing product into the draft. The image list is
// copied: removing a pending image must not touch the fetched product.
func (d *Draft) BeginEdit(p catalog.Product) {
	d.EditingID = p.ID
	d.Fields = Fields{Name: p.Name, Price: p.Price, Description: p.Description}
	d.PendingImages = append([]string(nil), p.Images...)
}

// Cancel resets to create mode unconditionally, discarding fields and
// pending images. Uploaded objects stay in storage; orphans are accepted.
func (d *Draft) Cancel() {
	*d = Draft{}
}

// BeginUpload claims the draft's single upload slot.
func (d *Draft) BeginUpload() error {
	if d.uploading {
		return ErrUploadInFlight
	}
	d.uploading = true
	return nil
}

func (d *Draft) EndUpload() {
	d.uploading = false
}

// AppendImages adds resolved URLs in batch order.
func (d *Draft) AppendImages(urls []string) {
	d.PendingImages = append(d.PendingImages, urls...)
}

// RemoveImage drops index i from the pending list. No confirmation and
// no remote delete: the stored object simply becomes unreferenced.
func (d *Draft) RemoveImage(i int) bool {
	if i < 0 || i >= len(d.PendingImages) {
		return false
	}
	d.PendingImages = append(d.PendingImages[:i], d.PendingImages[i+1:]...)
	return true
}

// Submit writes the draft through the repository: insert in create mode,
// update-by-id in edit mode. A draft with no images never reaches the
// repository. On success the draft resets to create mode; on failure it
// is left exactly as it was so the admin can retry.
func (d *Draft) Submit(ctx context.Context, repo catalog.Repository) error {
	if d.uploading {
		return ErrUploadInFlight
	}
	if len(d.PendingImages) == 0 {
		return ErrNoImages
	}

	if d.EditMode() {
		if err := repo.Update(ctx, d.EditingID, d.Fields.Name, d.Fields.Price, d.Fields.Description, d.PendingImages); err != nil {
			return err
		}
	} else {
		if _, err := repo.Insert(ctx, d.Fields.Name, d.Fields.Price, d.Fields.Description, d.PendingImages); err != nil {
			return err
		}
	}

	*d = Draft{}
	return nil
}
