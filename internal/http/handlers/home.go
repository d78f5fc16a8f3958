package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Code0plux/Website/internal/http/middleware"
	"github.com/Code0plux/Website/internal/http/render"
	"github.com/Code0plux/Website/internal/modules/catalog"
	"github.com/Code0plux/Website/internal/modules/order"
	"github.com/Code0plux/Website/pkg/view"
)

// HomeHandler renders the storefront: hero, searchable product grid,
// about/contact sections.
type HomeHandler struct {
	repo   catalog.Repository
	orders order.Composer
	log    *slog.Logger
}

func NewHomeHandler(repo catalog.Repository, orders order.Composer, log *slog.Logger) *HomeHandler {
	return &HomeHandler{repo: repo, orders: orders, log: log}
}

func (h *HomeHandler) Get(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))

	products, err := h.repo.List(c.Request.Context())
	if err != nil {
		// A failed read renders an empty grid; no user-facing alert.
		h.log.Error("catalog_list_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
		products = nil
	}

	visible := catalog.Filter(products, term)
	cards := make([]view.ProductCard, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, view.ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			ImageURL: p.FirstImage(),
			OrderURL: h.orders.Link(p.Name),
		})
	}

	render.Page(c, http.StatusOK, "home.html", view.HomePage{
		Title:    "HYZI GreenSignal India",
		Query:    term,
		Products: cards,
		Flash:    middleware.GetFlash(c),
	})
}
