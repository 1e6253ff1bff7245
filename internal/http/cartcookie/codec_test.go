package cartcookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New([]byte("test-secret"), "", false)
	assert.Equal(t, DefaultCookieName, c.CookieName)

	v := c.Encode("cart-123")
	id, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "cart-123", id)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("test-secret"), "cart", false)
	v := c.Encode("cart-123")

	// Swap the cart ID but keep the original signature.
	tampered := "cart-999." + v[len("cart-123."):]
	_, err := c.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	a := New([]byte("secret-a"), "cart", false)
	b := New([]byte("secret-b"), "cart", false)

	_, err := b.Decode(a.Encode("cart-123"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsMalformedValues(t *testing.T) {
	c := New([]byte("test-secret"), "cart", false)
	for _, v := range []string{"", "no-dot", ".sig-only", "a.b.c"} {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, "value %q", v)
	}
}
