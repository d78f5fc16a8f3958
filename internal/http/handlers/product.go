package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Code0plux/Website/internal/http/middleware"
	"github.com/Code0plux/Website/internal/http/render"
	"github.com/Code0plux/Website/internal/modules/catalog"
	"github.com/Code0plux/Website/internal/modules/gallery"
	"github.com/Code0plux/Website/internal/modules/order"
	"github.com/Code0plux/Website/pkg/view"
)

// ProductHandler renders the product detail page with its image gallery.
// The gallery cursor travels in the img query parameter, so prev/next/
// thumbnail are plain links and every navigation to a new product starts
// back at the first image.
type ProductHandler struct {
	repo   catalog.Repository
	orders order.Composer
	log    *slog.Logger
}

func NewProductHandler(repo catalog.Repository, orders order.Composer, log *slog.Logger) *ProductHandler {
	return &ProductHandler{repo: repo, orders: orders, log: log}
}

func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("product_fetch_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("product_id", id),
			slog.Any("err", err),
		)
		render.Page(c, http.StatusNotFound, "notfound.html", view.HomePage{
			Title: "Product not found",
			Flash: middleware.GetFlash(c),
		})
		return
	}

	vm := view.ProductPage{
		Title:       p.Name,
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		OrderURL:    h.orders.Link(p.Name),
		Flash:       middleware.GetFlash(c),
	}

	if n := len(p.Images); n > 0 {
		g := gallery.New(n)
		// The cursor arrives from the query string; out-of-range values
		// fall back to the first image instead of trusting the caller.
		if i, err := strconv.Atoi(c.Query("img")); err == nil && g.Valid(i) {
			g = g.Select(i)
		}

		vm.MainImage = p.Images[g.Cursor]
		vm.PrevHref = galleryHref(p.ID, g.Prev().Cursor)
		vm.NextHref = galleryHref(p.ID, g.Next().Cursor)
		for i, url := range p.Images {
			vm.Thumbs = append(vm.Thumbs, view.Thumb{
				URL:    url,
				Href:   galleryHref(p.ID, i),
				Active: i == g.Cursor,
			})
		}
	}

	render.Page(c, http.StatusOK, "product.html", vm)
}

func galleryHref(id string, cursor int) string {
	return fmt.Sprintf("/product/%s?img=%d", id, cursor)
}
