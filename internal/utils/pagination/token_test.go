package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 10, 30, 0, 123456789, time.UTC)
	id := "txn-123"

	token := EncodeCursor(createdAt, id)
	gotTime, gotID, err := DecodeCursor(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeCursor_InvalidBase64(t *testing.T) {
	_, _, err := DecodeCursor("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeCursor_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("no-separator-here"))
	_, _, err := DecodeCursor(token)
	assert.Error(t, err)
}

func TestDecodeCursor_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|txn-1"))
	_, _, err := DecodeCursor(token)
	assert.Error(t, err)
}
