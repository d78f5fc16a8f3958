package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Code0plux/Website/internal/http/flash"
	"github.com/Code0plux/Website/internal/http/middleware"
	"github.com/Code0plux/Website/internal/http/render"
	"github.com/Code0plux/Website/internal/modules/admin"
	"github.com/Code0plux/Website/internal/modules/catalog"
	"github.com/Code0plux/Website/internal/shared/apperr"
	"github.com/Code0plux/Website/pkg/view"
)

// AdminHandler drives the product CRUD panel. All of its POST actions
// mutate the per-session draft and redirect back to /admin, which
// re-reads the catalog on every render.
type AdminHandler struct {
	repo     catalog.Repository
	drafts   *admin.Store
	uploader *admin.Uploader
	flash    *flash.Codec
	log      *slog.Logger
}

func NewAdminHandler(repo catalog.Repository, drafts *admin.Store, uploader *admin.Uploader, flashCodec *flash.Codec, log *slog.Logger) *AdminHandler {
	return &AdminHandler{repo: repo, drafts: drafts, uploader: uploader, flash: flashCodec, log: log}
}

// adminForm carries the three text fields on every panel post so the
// draft keeps what the admin typed across uploads and removals.
type adminForm struct {
	Name        string `form:"name"`
	Price       string `form:"price"`
	Description string `form:"description"`
}

func (h *AdminHandler) sessionID(c *gin.Context) string {
	sess, _ := middleware.CurrentSession(c)
	if sess == nil {
		// RequireAdmin guarantees a session; this is belt and braces.
		return ""
	}
	return sess.ID
}

func (h *AdminHandler) saveFields(c *gin.Context, sid string) {
	var f adminForm
	_ = c.ShouldBind(&f)
	_ = h.drafts.With(sid, func(d *admin.Draft) error {
		d.Fields = admin.Fields{Name: f.Name, Price: f.Price, Description: f.Description}
		return nil
	})
}

// Dashboard renders the panel: the draft form on one side, the current
// catalog on the other.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	sid := h.sessionID(c)

	products, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("catalog_list_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
		products = nil
	}

	rows := make([]view.AdminProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, view.AdminProductRow{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			ImageURL:   p.FirstImage(),
			ImageCount: len(p.Images),
		})
	}

	d := h.drafts.Snapshot(sid)
	render.Page(c, http.StatusOK, "admin.html", view.AdminPage{
		Title: "Admin Panel",
		Email: u.Email,
		Draft: view.AdminDraft{
			EditMode:      d.EditMode(),
			EditingID:     d.EditingID,
			Name:          d.Fields.Name,
			Price:         d.Fields.Price,
			Description:   d.Fields.Description,
			PendingImages: d.PendingImages,
			Uploading:     d.Uploading(),
		},
		Products: rows,
		Flash:    middleware.GetFlash(c),
	})
}

// Upload runs one batch of image uploads. The draft's upload slot is
// claimed before any network call and released after the last append;
// a second batch arriving in between is turned away.
func (h *AdminHandler) Upload(c *gin.Context) {
	sid := h.sessionID(c)
	h.saveFields(c, sid)

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashWarning, "Choose at least one image to upload.")
		return
	}
	headers := form.File["images"]

	if err := h.drafts.With(sid, func(d *admin.Draft) error { return d.BeginUpload() }); err != nil {
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashWarning, "An upload is already in progress.")
		return
	}

	var files []admin.File
	var failed []string
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			failed = append(failed, fh.Filename)
			continue
		}
		defer f.Close()
		files = append(files, admin.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}

	res := h.uploader.UploadBatch(c.Request.Context(), files)

	_ = h.drafts.With(sid, func(d *admin.Draft) error {
		d.AppendImages(res.URLs)
		d.EndUpload()
		return nil
	})

	for _, fe := range res.Failed {
		failed = append(failed, fe.Name)
	}
	if len(failed) > 0 {
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashWarning,
			"Some images could not be uploaded: "+strings.Join(failed, ", "))
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// RemoveImage drops one pending image by index. The stored object is
// left behind on purpose.
func (h *AdminHandler) RemoveImage(c *gin.Context) {
	sid := h.sessionID(c)
	h.saveFields(c, sid)

	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashError, "Invalid image.")
		return
	}

	removed := false
	_ = h.drafts.With(sid, func(d *admin.Draft) error {
		removed = d.RemoveImage(idx)
		return nil
	})
	if !removed {
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashError, "Invalid image.")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// EditBegin loads a product into the draft.
func (h *AdminHandler) EditBegin(c *gin.Context) {
	sid := h.sessionID(c)
	id := c.Param("id")

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashError, "Product not found.")
		return
	}

	_ = h.drafts.With(sid, func(d *admin.Draft) error {
		d.BeginEdit(p)
		return nil
	})
	c.Redirect(http.StatusFound, "/admin")
}

// Cancel discards the draft and returns the form to create mode.
func (h *AdminHandler) Cancel(c *gin.Context) {
	sid := h.sessionID(c)
	_ = h.drafts.With(sid, func(d *admin.Draft) error {
		d.Cancel()
		return nil
	})
	c.Redirect(http.StatusFound, "/admin")
}

type submitForm struct {
	Name        string `form:"name" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// Submit writes the draft through the catalog repository.
func (h *AdminHandler) Submit(c *gin.Context) {
	sid := h.sessionID(c)

	var f submitForm
	if err := c.ShouldBind(&f); err != nil {
		h.saveFields(c, sid)
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashError, "Name, price and description are required.")
		return
	}

	wasEdit := false
	err := h.drafts.With(sid, func(d *admin.Draft) error {
		d.Fields = admin.Fields{Name: f.Name, Price: f.Price, Description: f.Description}
		wasEdit = d.EditMode()
		return d.Submit(c.Request.Context(), h.repo)
	})

	switch {
	case err == nil:
		msg := "Product added."
		if wasEdit {
			msg = "Product updated."
		}
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashSuccess, msg)
	case errors.Is(err, admin.ErrNoImages):
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashError, "Please upload at least one image.")
	case errors.Is(err, admin.ErrUploadInFlight):
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashWarning, "Wait for the upload to finish.")
	default:
		// The write failed remotely; the draft is untouched and the
		// admin sees the unchanged panel after the redirect.
		_ = c.Error(apperr.Wrap(err))
		c.Redirect(http.StatusFound, "/admin")
	}
}

// DeleteConfirm interposes an explicit confirmation before the
// irreversible delete.
func (h *AdminHandler) DeleteConfirm(c *gin.Context) {
	id := c.Param("id")

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/admin", view.FlashError, "Product not found.")
		return
	}

	render.Page(c, http.StatusOK, "admin_confirm_delete.html", view.AdminConfirmPage{
		Title: "Delete product",
		ID:    p.ID,
		Name:  p.Name,
		Flash: middleware.GetFlash(c),
	})
}

// Delete removes the product row. Its uploaded images stay in storage.
func (h *AdminHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(apperr.Wrap(err))
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	render.RedirectWithFlash(c, h.flash, "/admin", view.FlashSuccess, "Product deleted.")
}
