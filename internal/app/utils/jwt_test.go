package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateJWT(key, "report-bot", ScopeReadBoats, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(key, token)
	require.NoError(t, err)
	assert.Equal(t, "report-bot", claims.Subject)
	assert.Equal(t, ScopeReadBoats, claims.Scope)
}

func TestJWT_Rejects(t *testing.T) {
	key := []byte("secret")

	t.Run("wrong key", func(t *testing.T) {
		token, err := GenerateJWT([]byte("other"), "x", ScopeReadBoats, time.Hour)
		require.NoError(t, err)
		_, err = ParseJWT(key, token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateJWT(key, "x", ScopeReadBoats, -time.Minute)
		require.NoError(t, err)
		_, err = ParseJWT(key, token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ParseJWT(key, token)
		assert.Error(t, err)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := GenerateJWT(nil, "x", ScopeReadBoats, time.Hour)
		assert.ErrorIs(t, err, ErrEmptyJWTKey)
		_, err = ParseJWT(nil, "token")
		assert.ErrorIs(t, err, ErrEmptyJWTKey)
	})
}
