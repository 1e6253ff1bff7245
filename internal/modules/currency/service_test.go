package currency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDefaults(t *testing.T) {
	s := NewService("", nil)
	assert.Equal(t, "EUR", s.BaseCurrency())
	assert.Equal(t, "EUR", s.DefaultDisplayCurrency())
}

func TestNormalizeDisplay(t *testing.T) {
	s := NewService("eur", map[string]float64{"usd": 1.08, "BAD": -1})

	code, ok := s.NormalizeDisplay(" usd ")
	require.True(t, ok)
	assert.Equal(t, "USD", code)

	_, ok = s.NormalizeDisplay("BAD")
	assert.False(t, ok)

	_, ok = s.NormalizeDisplay("JPY")
	assert.False(t, ok)
}

func TestDisplayRate(t *testing.T) {
	s := NewService("EUR", map[string]float64{"USD": 1.08})

	info, err := s.DisplayRate(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, 1.08, info.Rate)

	info, err = s.DisplayRate(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 1.0, info.Rate)

	_, err = s.DisplayRate(context.Background(), "JPY")
	assert.Error(t, err)
}
