//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	// Encoding keeps microsecond precision, matching the DB column.
	createdAt := time.Now().Truncate(time.Microsecond)

	cursor := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, createdAt.Equal(gotTime), "expected %v, got %v", createdAt, gotTime)
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	valid := queries.EncodeAfterCursor(time.Now(), uuid.New())

	cases := []struct {
		name   string
		cursor string
	}{
		{"empty cursor", ""},
		{"not base64", "%%%not-base64%%%"},
		{"missing version prefix", base64.URLEncoding.EncodeToString([]byte("123-" + uuid.NewString()))},
		{"wrong version", base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{"missing separator", base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{"bad timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"bad uuid", base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(c.cursor)
			assert.Error(t, err)
		})
	}

	t.Run("valid cursor still decodes", func(t *testing.T) {
		_, _, err := queries.DecodeAfterCursor(valid)
		assert.NoError(t, err)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0), "default limit")
	assert.Equal(t, 20, queries.ValidateLimit(-1))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
