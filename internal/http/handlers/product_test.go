package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Code0plux/Website/internal/modules/catalog"
)

func productRouter(repo *stubCatalog) *gin.Engine {
	r := gin.New()
	h := NewProductHandler(repo, testComposer(), testLogger())
	r.GET("/product/:id", h.Get)
	return r
}

func threeImageProduct() *stubCatalog {
	return &stubCatalog{products: []catalog.Product{
		{ID: "5", Name: "Rose Diffuser", Price: "349", Description: "rose oil blend",
			Images: []string{"https://cdn.test/a", "https://cdn.test/b", "https://cdn.test/c"}},
	}}
}

// The image shown large appears twice in the page (hero and its own
// thumbnail); the others appear once, as thumbnails.
func mainImageIs(t *testing.T, body, url string) {
	t.Helper()
	assert.Equalf(t, 2, strings.Count(body, url), "expected %s to be the main image", url)
}

func TestProductUnknownIDRendersNotFound(t *testing.T) {
	rec := doGet(productRouter(&stubCatalog{}), "/product/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestProductOpensOnFirstImage(t *testing.T) {
	rec := doGet(productRouter(threeImageProduct()), "/product/5")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	mainImageIs(t, body, "https://cdn.test/a")
	assert.Equal(t, 1, strings.Count(body, "https://cdn.test/b"))
	// Prev wraps to the last image, next moves forward.
	assert.Contains(t, body, `href="/product/5?img=2"`)
	assert.Contains(t, body, `href="/product/5?img=1"`)
}

func TestProductGalleryCursorFromQuery(t *testing.T) {
	rec := doGet(productRouter(threeImageProduct()), "/product/5?img=2")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	mainImageIs(t, body, "https://cdn.test/c")
	assert.Equal(t, 1, strings.Count(body, "https://cdn.test/a"))
}

func TestProductGalleryIgnoresOutOfRangeCursor(t *testing.T) {
	for _, q := range []string{"?img=9", "?img=-1", "?img=abc"} {
		rec := doGet(productRouter(threeImageProduct()), "/product/5"+q)
		require.Equal(t, http.StatusOK, rec.Code)
		mainImageIs(t, rec.Body.String(), "https://cdn.test/a")
	}
}

func TestProductPageCarriesOrderLink(t *testing.T) {
	rec := doGet(productRouter(threeImageProduct()), "/product/5")
	assert.Contains(t, rec.Body.String(), "order+Rose+Diffuser")
}

func TestProductWithoutImagesRendersNoGallery(t *testing.T) {
	repo := &stubCatalog{products: []catalog.Product{
		{ID: "7", Name: "Refill Pack", Price: "99", Description: "refill"},
	}}

	rec := doGet(productRouter(repo), "/product/7")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Refill Pack")
	assert.NotContains(t, body, "img=")
}
