package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Code0plux/Website/internal/http/flash"
	"github.com/Code0plux/Website/internal/modules/catalog"
	"github.com/Code0plux/Website/internal/modules/order"
	"github.com/Code0plux/Website/pkg/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errGatewayDown = errors.New("gateway down")

// stubCatalog is an in-memory catalog.Repository.
type stubCatalog struct {
	products []catalog.Product
	listErr  error

	inserted []catalog.Product
	updated  []catalog.Product
	deleted  []string
}

func (s *stubCatalog) List(ctx context.Context) ([]catalog.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.products, nil
}

func (s *stubCatalog) Get(ctx context.Context, id string) (catalog.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, errors.New("record not found")
}

func (s *stubCatalog) Insert(ctx context.Context, name, price, description string, images []string) (catalog.Product, error) {
	p := catalog.Product{ID: "generated", Name: name, Price: price, Description: description, Images: images}
	s.inserted = append(s.inserted, p)
	return p, nil
}

func (s *stubCatalog) Update(ctx context.Context, id, name, price, description string, images []string) error {
	s.updated = append(s.updated, catalog.Product{ID: id, Name: name, Price: price, Description: description, Images: images})
	return nil
}

func (s *stubCatalog) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testComposer() order.Composer {
	return order.New("https://wa.me", "918344197738")
}

func testFlashCodec() *flash.Codec {
	return flash.NewCodec([]byte("test-secret"), "flash", false)
}

func doGet(r *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doPostForm(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(http.MethodPost, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// readFlash decodes the flash cookie a handler set on the response.
func readFlash(t *testing.T, rec *httptest.ResponseRecorder, codec *flash.Codec) *view.Flash {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name != codec.CookieName || ck.Value == "" {
			continue
		}
		raw, err := url.QueryUnescape(ck.Value)
		require.NoError(t, err)
		f, err := codec.Decode(raw)
		require.NoError(t, err)
		return f
	}
	return nil
}
