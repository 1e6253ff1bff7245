package flash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunarest.com/app/pkg/view"
)

func TestFlashRoundTrip(t *testing.T) {
	c := NewCodec([]byte("test-secret"), "flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Added to cart."})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, f.Kind)
	assert.Equal(t, "Added to cart.", f.Message)
}

func TestFlashRejectsTamperedPayload(t *testing.T) {
	c := NewCodec([]byte("test-secret"), "flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashError, Message: "Nope."})
	require.NoError(t, err)

	_, err = c.Decode("x" + v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFlashRejectsEmptyMessage(t *testing.T) {
	c := NewCodec([]byte("test-secret"), "flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "   "})
	require.NoError(t, err)

	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}
