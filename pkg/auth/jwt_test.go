package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateAccessToken("42", "User", "alice@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Sub)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateAccessToken("42", "User", "alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseValidate(token)
	assert.Error(t, err)
}

func TestWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := CreateAccessToken("42", "User", "alice@example.com", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseValidate(token)
	assert.Error(t, err)
}
