//go:build unit

package jwt

import (
	"testing"
	"time"

	"dryclean-api/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := NewService("secret", time.Hour, 15*time.Minute)

	t.Run("access token round trip", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(42, customer.RoleCustomer)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.CustomerID)
		assert.Equal(t, "musteri", claims.Role)
	})

	t.Run("reset token is not an access token", func(t *testing.T) {
		token, err := svc.GenerateResetToken(7)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, ErrWrongTokenType)

		claims, err := svc.ValidateResetToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.CustomerID)
	})

	t.Run("expired reset token", func(t *testing.T) {
		issued := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		s := NewService("secret", time.Hour, 15*time.Minute)
		s.now = func() time.Time { return issued }

		token, err := s.GenerateResetToken(7)
		require.NoError(t, err)

		s.now = func() time.Time { return issued.Add(16 * time.Minute) }
		_, err = s.ValidateResetToken(token)
		require.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := NewService("other", time.Hour, time.Minute)
		token, err := other.GenerateAccessToken(1, customer.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
