package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	recordID := "a2f0c7e4-1111-4222-8333-944444444444"

	token := EncodeToken(createdAt, recordID)
	assert.NotEmpty(t, token)

	gotCreatedAt, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotCreatedAt))
	assert.Equal(t, recordID, gotID)
}

func TestDecodeTokenInvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeTokenMissingSeparator(t *testing.T) {
	// Valid base64 but no separator inside.
	_, _, err := DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestDecodeTokenBadTimestamp(t *testing.T) {
	_, _, err := DecodeToken("bm90LWEtdGltZXxpZA==") // "not-a-time|id"
	assert.Error(t, err)
}
