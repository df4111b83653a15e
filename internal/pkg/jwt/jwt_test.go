//go:build unit

package jwt

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	const userID = "65f1a0c2e4b0a1b2c3d4e5f6"

	t.Run("round trip", func(t *testing.T) {
		s := NewService("secret", time.Hour)

		token, err := s.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, userID, claims.Subject)
	})

	t.Run("expired", func(t *testing.T) {
		s := NewService("secret", time.Hour)
		s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := s.GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, err = NewService("another", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none is rejected", func(t *testing.T) {
		claims := Claims{UserID: userID, Role: "admin", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		s := NewService("secret", time.Hour)
		token, err := s.GenerateToken("", user.RoleUser)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
