package catalog

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunarest.com/app/internal/modules/card"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToCardFullProduct(t *testing.T) {
	p := Product{
		ID:             "p1",
		Name:           "Cooling Pillow",
		Slug:           "cooling-pillow",
		PriceCents:     7900,
		CompareAtCents: 9900,
		Currency:       "EUR",
		Featured:       true,
		OptionsJSON:    []byte(`[{"name":"Size","values":["Standard","King"]},{"name":"Color","values":["White","Blue"],"swatches":{"White":"#fff","Blue":"#2c4a7a"}}]`),
		Images:         []Image{{URL: "https://cdn.lunarest.com/pillow.jpg"}},
		Variants: []Variant{
			{ID: "v1", OptionsJSON: []byte(`{"Size":"Standard","Color":"White"}`), PriceCents: 7900, Stock: 3},
			{ID: "v2", OptionsJSON: []byte(`{"Size":"King","Color":"White"}`), PriceCents: 9900, Stock: 0},
		},
	}

	got := ToCard(discard(), p)

	assert.Equal(t, "Cooling Pillow", got.Title)
	assert.True(t, got.Featured)
	require.Len(t, got.Options, 2)
	assert.Equal(t, []string{"Standard", "King"}, got.Options[0].Values)
	assert.Equal(t, "#2c4a7a", got.Options[1].Swatches["Blue"])
	require.Len(t, got.Variants, 2)
	assert.True(t, got.Variants[0].InStock)
	assert.False(t, got.Variants[1].InStock)
	assert.Equal(t, "White", got.Variants[0].Options["Color"])

	// The mapped product drives the engine directly.
	v, ok := card.Resolve(got, card.Selection{"Size": "King", "Color": "White"})
	require.True(t, ok)
	assert.Equal(t, "v2", v.ID)
}

func TestToCardBadJSONDegrades(t *testing.T) {
	p := Product{
		ID:          "p1",
		Stock:       5,
		OptionsJSON: []byte(`{not json`),
		Variants: []Variant{
			{ID: "v1", OptionsJSON: []byte(`also bad`), Stock: 1},
		},
	}

	got := ToCard(discard(), p)

	assert.False(t, got.HasOptions())
	require.Len(t, got.Variants, 1)
	assert.Empty(t, got.Variants[0].Options)
	assert.True(t, got.InStock)
}

func TestToCardSkipsEmptyOptionDefs(t *testing.T) {
	p := Product{
		ID:          "p1",
		OptionsJSON: []byte(`[{"name":"","values":["x"]},{"name":"Size","values":[]},{"name":"Size","values":["Standard"]}]`),
	}

	got := ToCard(discard(), p)
	require.Len(t, got.Options, 1)
	assert.Equal(t, "Size", got.Options[0].Name)
}

func TestToCardNoOptions(t *testing.T) {
	p := Product{ID: "p1", PriceCents: 2500, Stock: 0}

	got := ToCard(discard(), p)
	assert.False(t, got.HasOptions())
	assert.False(t, got.InStock)
	assert.False(t, card.CanAddToCart(got, card.Selection{}, nil))
}
