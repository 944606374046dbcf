//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/pkg/jwt"
	"dryclean-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour, 15*time.Minute)
	v := usecase.NewTokenValidator(svc)

	t.Run("access token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(42, customer.RoleAdmin)
		require.NoError(t, err)

		id, role, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, customer.RoleAdmin, role)
	})

	t.Run("reset token is not an access token", func(t *testing.T) {
		token, err := svc.GenerateResetToken(42)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := v.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
