package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := m.Generate(101, "alice@example.com", time.Hour)
		require.NoError(t, err)

		claims, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(101), claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, "101", claims.Subject)
	})

	t.Run("rejects non-positive user id", func(t *testing.T) {
		_, err := m.Generate(0, "", time.Hour)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		token, err := NewJWTManager("other-secret").Generate(101, "", time.Hour)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := m.Generate(101, "", -time.Minute)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("leeway absorbs clock skew", func(t *testing.T) {
		token, err := m.Generate(101, "", -time.Second)
		require.NoError(t, err)

		_, err = NewJWTManager("test-secret", WithLeeway(time.Minute)).Validate(token)
		assert.NoError(t, err)
	})

	t.Run("rejects token without expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 101}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token without user id", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects other signing methods", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
			UserID:           101,
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := m.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTManagerIssuer(t *testing.T) {
	accounts := NewJWTManager("test-secret", WithIssuer("accounts"))
	token, err := accounts.Generate(7, "", time.Hour)
	require.NoError(t, err)

	claims, err := accounts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "accounts", claims.Issuer)

	_, err = NewJWTManager("test-secret", WithIssuer("billing")).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Without a configured issuer any iss is accepted.
	_, err = NewJWTManager("test-secret").Validate(token)
	assert.NoError(t, err)
}
