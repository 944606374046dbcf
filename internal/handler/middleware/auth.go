package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/pkg/cookie"
	"dryclean-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCustomerIDKey = "customer_id"
	ctxRoleKey       = "customer_role"
	ctxClaimsKey     = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, httperr.MsgUnauthorized)
			return
		}

		customerID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, "Oturumunuz geçersiz veya süresi dolmuş")
			return
		}

		setIdentity(c, customerID, role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return requireRole(customer.RoleAdmin, "Bu işlem için yönetici yetkisi gerekiyor")
}

// RequireCustomer keeps admin accounts away from the customer screens.
func (m *AuthMiddleware) RequireCustomer() gin.HandlerFunc {
	return requireRole(customer.RoleCustomer, "Bu işlem yalnızca müşteri hesapları içindir")
}

func requireRole(want customer.Role, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, httperr.MsgInternal)
			return
		}
		if role != want {
			httperr.Abort(c, http.StatusForbidden, msg)
			return
		}
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	if token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, customerID int64, role customer.Role) {
	c.Set(ctxCustomerIDKey, customerID)
	c.Set(ctxRoleKey, role)
	c.Set(ctxClaimsKey, map[string]any{
		"customer_id": strconv.FormatInt(customerID, 10),
		"role":        string(role),
	})
}

func GetCustomerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func GetRole(c *gin.Context) (customer.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(customer.Role)
	return role, ok
}
