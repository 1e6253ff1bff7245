package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lunarest.com/app/internal/modules/catalog"
	"lunarest.com/app/pkg/view"
)

type fakeCatalogRepo struct {
	products []catalog.Product
}

func (f *fakeCatalogRepo) ListActive(_ context.Context, _, _ int) ([]catalog.Product, error) {
	return f.products, nil
}

func (f *fakeCatalogRepo) GetBySlug(_ context.Context, slug string) (catalog.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return catalog.Product{}, gorm.ErrRecordNotFound
}

func testRouter(products ...catalog.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := catalog.NewService(&fakeCatalogRepo{products: products}, logger)
	h := NewProductsHandler(svc, "EUR")

	r := gin.New()
	r.GET("/products", h.List)
	r.GET("/products/:slug", h.Show)
	r.GET("/products/:slug/card", h.CardState)
	return r
}

func pillowRow() catalog.Product {
	return catalog.Product{
		ID:          "p1",
		Name:        "Cooling Pillow",
		Slug:        "cooling-pillow",
		Status:      "active",
		PriceCents:  7900,
		Currency:    "EUR",
		OptionsJSON: []byte(`[{"name":"Size","values":["Standard","King"]}]`),
		Variants: []catalog.Variant{
			{ID: "v-std", SKU: "PILLOW-STD", OptionsJSON: []byte(`{"Size":"Standard"}`), PriceCents: 7900, CompareAtCents: 9900, Stock: 10},
			{ID: "v-king", SKU: "PILLOW-KING", OptionsJSON: []byte(`{"Size":"King"}`), PriceCents: 9900, Stock: 0},
		},
	}
}

func TestProductsList(t *testing.T) {
	r := testRouter(pillowRow())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got view.ProductListVM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Products, 1)

	// Listing pre-seeds to the first in-stock variant.
	p := got.Products[0]
	assert.Equal(t, "cooling-pillow", p.Slug)
	assert.Equal(t, "v-std", p.VariantID)
	assert.True(t, p.CanAddToCart)
	assert.Equal(t, int64(7900), p.PriceCents)
	assert.Equal(t, "€79.00", p.Price)
	assert.Equal(t, 20, p.DiscountPct)
}

func TestProductShowNotFound(t *testing.T) {
	r := testRouter(pillowRow())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/no-such-thing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardStateSelection(t *testing.T) {
	r := testRouter(pillowRow())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/cooling-pillow/card?Size=King", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got view.ProductCardVM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, "v-king", got.VariantID)
	assert.False(t, got.CanAddToCart)
	assert.False(t, got.InStock)
	assert.Equal(t, int64(9900), got.PriceCents)

	require.Len(t, got.Options, 1)
	require.Len(t, got.Options[0].Values, 2)
	assert.True(t, got.Options[0].Values[0].Available)   // Standard
	assert.False(t, got.Options[0].Values[1].Available)  // King (out of stock)
	assert.True(t, got.Options[0].Values[1].Selected)
}

func TestCardStateIgnoresUnknownParams(t *testing.T) {
	r := testRouter(pillowRow())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/cooling-pillow/card?Size=Standard&Bogus=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got view.ProductCardVM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "v-std", got.VariantID)
	assert.True(t, got.CanAddToCart)
}

func TestCardStateUnknownValueResolvesAbsent(t *testing.T) {
	r := testRouter(pillowRow())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/cooling-pillow/card?Size=Emperor", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got view.ProductCardVM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.VariantID)
	assert.False(t, got.CanAddToCart)
	// Base-price fallback while nothing resolves.
	assert.Equal(t, int64(7900), got.PriceCents)
}
