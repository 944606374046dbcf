//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	reset, err := time.ParseDuration(h.cfg.ResetTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, reset)
}

func (h *JWTHelper) GenerateToken(t *testing.T, customerID int64, role customer.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := h.service(t, duration).GenerateAccessToken(customerID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, customerID int64, role customer.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(customerID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// GenerateResetToken signs a reset token, which must not pass as a session token.
func (h *JWTHelper) GenerateResetToken(t *testing.T, customerID int64) string {
	t.Helper()
	token, err := h.service(t, time.Hour).GenerateResetToken(customerID)
	require.NoError(t, err)
	return token
}
