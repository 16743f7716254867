package middleware

import (
	"log/slog"
	"net/http"

	"evcontrol/internal/pkg/config"
	"evcontrol/internal/pkg/password"

	"github.com/gin-gonic/gin"
)

const ctxUIUserKey = "ui_user"

const basicAuthRealm = `Basic realm="evcontrol"`

type AuthMiddleware struct {
	cfg config.AuthConfig
}

func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth asks for Basic Auth credentials when UI_USER and
// UI_PASSWORD_HASH are set, and lets everything through otherwise.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.cfg.Enabled() {
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok || !password.CheckCredentials(m.cfg.User, m.cfg.PasswordHash, user, pass) {
			if ok {
				slog.Warn("Basic auth failed", "user", user, "client_ip", c.ClientIP())
			}
			c.Header("WWW-Authenticate", basicAuthRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Authentication required"},
			})
			return
		}

		c.Set(ctxUIUserKey, user)
		c.Next()
	}
}

func GetUIUser(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUIUserKey)
	if !exists {
		return "", false
	}
	user, ok := v.(string)
	return user, ok
}
