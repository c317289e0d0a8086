package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipquest/clipquest_backend/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	signed, expiresAt, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "clipquest-backend")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "clipquest-backend", claims.Issuer)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	signed, _, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "clipquest-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(signed, "a-different-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	signed, _, err := utils.GenerateJWT("user-123", testSecret, -time.Minute, "clipquest-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(signed, testSecret)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)
	assert.True(t, utils.CheckPasswordHash("correct-horse-battery", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := utils.HashPassword("short")
	assert.ErrorIs(t, err, utils.ErrPasswordTooShort)
}
