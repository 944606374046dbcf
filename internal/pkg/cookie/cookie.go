package cookie

import (
	"net/http"
	"strings"
	"time"

	"dryclean-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	write(c, cfg, token, int(ttl.Seconds()))
}

// ClearAccessTokenCookie expires the session cookie on logout.
func ClearAccessTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

// GetAccessToken returns "" when the cookie is absent.
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// The session cookie is always HttpOnly and scoped to the whole site.
func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	})
}

func sameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
