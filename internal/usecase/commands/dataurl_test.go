//go:build unit

package commands_test

import (
	"encoding/base64"
	"testing"

	"merch-store/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	encoded := base64.StdEncoding.EncodeToString(payload)

	t.Run("valid png data url", func(t *testing.T) {
		mime, data, err := commands.DecodeDataURL("data:image/png;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, "image/png", mime)
		assert.Equal(t, payload, data)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []struct {
			name string
			in   string
		}{
			{"not a data url", "https://example.com/image.png"},
			{"missing comma", "data:image/png;base64"},
			{"missing base64 marker", "data:image/png," + encoded},
			{"bad base64 payload", "data:image/png;base64,!!not-base64!!"},
			{"empty payload", "data:image/png;base64,"},
			{"empty string", ""},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, _, err := commands.DecodeDataURL(c.in)
				assert.ErrorIs(t, err, commands.ErrInvalidDataURL)
			})
		}
	})
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, commands.IsDataURL("data:image/png;base64,AAAA"))
	assert.False(t, commands.IsDataURL("https://example.com/a.png"))
	assert.False(t, commands.IsDataURL(""))
}
