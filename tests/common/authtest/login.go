//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/handler/dto/request"
	"dryclean-api/internal/pkg/cookie"
	"dryclean-api/tests/common/dbtest"
	"dryclean-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	customerLoginURL = "/api/auth/login"
	adminLoginURL    = "/api/admin/login"
)

func LoginCustomer(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return login(t, router, customerLoginURL, email, password)
}

func LoginAdmin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return login(t, router, adminLoginURL, email, password)
}

func login(t *testing.T, router *gin.Engine, url, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, url,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLoginCustomer returns the new customer's id and a session token.
func CreateAndLoginCustomer(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, phone string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestCustomer(t, db, email, phone, string(customer.RoleCustomer))
	return id, LoginCustomer(t, router, email, dbtest.TestPassword)
}

// CreateAndLoginAdmin needs the configured admin address, otherwise admin login refuses the account.
func CreateAndLoginAdmin(t *testing.T, db dbtest.DBLike, router *gin.Engine, adminEmail string) string {
	t.Helper()
	dbtest.CreateTestCustomer(t, db, adminEmail, "05000000000", string(customer.RoleAdmin))
	return LoginAdmin(t, router, adminEmail, dbtest.TestPassword)
}

func Logout(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
