package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunarest.com/app/internal/modules/currency"
)

func TestBuildCartVMFromRows(t *testing.T) {
	s := &Service{currency: currency.NewService("EUR", map[string]float64{"USD": 1.1})}

	rows := []cartRow{
		{ItemID: "i1", VariantID: "v1", Qty: 2, PriceCents: 7900, Currency: "EUR", ProductName: "Cooling Pillow", ProductSlug: "cooling-pillow", OptionsJSON: []byte(`{"Size":"Standard"}`)},
		{ItemID: "i2", VariantID: "", Qty: 1, PriceCents: 2500, Currency: "EUR", ProductName: "Sleep Mask", ProductSlug: "sleep-mask"},
	}

	vm, err := s.buildCartVMFromRows(context.Background(), rows, "EUR")
	require.NoError(t, err)

	assert.Equal(t, 3, vm.Count)
	assert.Equal(t, int64(2*7900+2500), vm.SubtotalCents)
	assert.Equal(t, "EUR", vm.Currency)
	require.Len(t, vm.Items, 2)
	assert.Equal(t, int64(15800), vm.Items[0].LineTotalCents)
	assert.Equal(t, "€158.00", vm.Items[0].LineTotal)
	assert.Equal(t, "Standard", vm.Items[0].Options["Size"])
	assert.Empty(t, vm.Items[1].VariantID)
}

func TestBuildCartVMDisplayCurrencyConversion(t *testing.T) {
	s := &Service{currency: currency.NewService("EUR", map[string]float64{"USD": 1.1})}

	rows := []cartRow{
		{ItemID: "i1", Qty: 1, PriceCents: 10000, Currency: "EUR", ProductName: "Duvet", ProductSlug: "duvet"},
	}

	vm, err := s.buildCartVMFromRows(context.Background(), rows, "USD")
	require.NoError(t, err)

	assert.Equal(t, "USD", vm.Currency)
	assert.Equal(t, "EUR", vm.BaseCurrency)
	assert.Equal(t, int64(10000), vm.SubtotalCents)
	assert.Equal(t, int64(11000), vm.DisplaySubtotalCents)
	assert.Equal(t, "$110.00", vm.Subtotal)
	assert.Equal(t, int64(10000), vm.Items[0].BaseUnitPriceCents)
	assert.Equal(t, int64(11000), vm.Items[0].UnitPriceCents)
}

func TestBuildCartVMUnknownDisplayCurrencyFallsBack(t *testing.T) {
	s := &Service{currency: currency.NewService("EUR", nil)}

	rows := []cartRow{{ItemID: "i1", Qty: 1, PriceCents: 5000, Currency: "EUR", ProductName: "Pillow", ProductSlug: "pillow"}}

	vm, err := s.buildCartVMFromRows(context.Background(), rows, "XXX")
	require.NoError(t, err)
	assert.Equal(t, "EUR", vm.Currency)
	assert.Equal(t, int64(5000), vm.DisplaySubtotalCents)
}

func TestBuildCartVMMixedCurrency(t *testing.T) {
	s := &Service{currency: currency.NewService("EUR", nil)}

	rows := []cartRow{
		{ItemID: "i1", Qty: 1, PriceCents: 5000, Currency: "EUR"},
		{ItemID: "i2", Qty: 1, PriceCents: 5000, Currency: "USD"},
	}

	_, err := s.buildCartVMFromRows(context.Background(), rows, "EUR")
	assert.ErrorIs(t, err, ErrMixedCurrency)
}

func TestBuildCartVMSkipsNonPositiveQty(t *testing.T) {
	s := &Service{currency: currency.NewService("EUR", nil)}

	rows := []cartRow{
		{ItemID: "i1", Qty: 0, PriceCents: 5000, Currency: "EUR"},
		{ItemID: "i2", Qty: 1, PriceCents: 2500, Currency: "EUR"},
	}

	vm, err := s.buildCartVMFromRows(context.Background(), rows, "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1, vm.Count)
	require.Len(t, vm.Items, 1)
	assert.Equal(t, "i2", vm.Items[0].ItemID)
}
