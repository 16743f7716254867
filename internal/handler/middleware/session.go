package middleware

import (
	"log/slog"
	"net/http"

	"evcontrol/internal/handler/httperr"
	"evcontrol/internal/infra/session"
	"evcontrol/internal/pkg/config"
	"evcontrol/internal/pkg/cookie"
	"evcontrol/internal/pkg/jwt"
	"evcontrol/internal/usecase/board"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionIDKey = "session_id"
	ctxBoardKey     = "board"
)

type SessionMiddleware struct {
	jwt      *jwt.Service
	registry *session.Registry
	cookie   config.CookieConfig
}

func NewSessionMiddleware(jwtService *jwt.Service, registry *session.Registry, cookieCfg config.CookieConfig) *SessionMiddleware {
	return &SessionMiddleware{
		jwt:      jwtService,
		registry: registry,
		cookie:   cookieCfg,
	}
}

// Attach resolves the board of the calling browser. A missing, invalid or
// expired session cookie starts a new session, whose board is mounted
// (first fetch of the list) before the handler runs.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, b := m.resolve(c)
		if b == nil {
			id, b = m.registry.Create()
			b.Mount(c.Request.Context())
		}

		token, err := m.jwt.GenerateSessionToken(id)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		cookie.SetSessionCookie(c, m.cookie, token, m.jwt.TokenDuration())

		c.Set(ctxSessionIDKey, id)
		c.Set(ctxBoardKey, b)
		c.Next()
	}
}

func (m *SessionMiddleware) resolve(c *gin.Context) (uuid.UUID, *board.Board) {
	token := cookie.GetSessionToken(c)
	if token == "" {
		return uuid.Nil, nil
	}

	id, err := m.jwt.ValidateSessionToken(token)
	if err != nil {
		slog.Debug("session token rejected", "error", err.Error())
		return uuid.Nil, nil
	}

	b, err := m.registry.Get(id)
	if err != nil {
		slog.Debug("session not found, starting a new one", "session_id", id)
		return uuid.Nil, nil
	}
	return id, b
}

func GetBoard(c *gin.Context) (*board.Board, bool) {
	v, exists := c.Get(ctxBoardKey)
	if !exists {
		return nil, false
	}
	b, ok := v.(*board.Board)
	return b, ok
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
