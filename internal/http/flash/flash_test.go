package flash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Code0plux/Website/pkg/view"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"), "flash", false)

	val, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Product added."})
	require.NoError(t, err)

	f, err := c.Decode(val)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, f.Kind)
	assert.Equal(t, "Product added.", f.Message)
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	c := NewCodec([]byte("secret"), "flash", false)

	val, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "hello"})
	require.NoError(t, err)

	payload, sig, ok := strings.Cut(val, ".")
	require.True(t, ok)

	_, err = c.Decode("x" + payload + "." + sig)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsForeignSignature(t *testing.T) {
	a := NewCodec([]byte("secret-a"), "flash", false)
	b := NewCodec([]byte("secret-b"), "flash", false)

	val, err := a.Encode(view.Flash{Kind: view.FlashInfo, Message: "hello"})
	require.NoError(t, err)

	_, err = b.Decode(val)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	c := NewCodec([]byte("secret"), "flash", false)
	for _, v := range []string{"", "no-dot", "a.b.c.d", "!!.!!"} {
		_, err := c.Decode(v)
		assert.Errorf(t, err, "value %q", v)
	}
}
