package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"evcontrol/internal/handler/httperr"
	"evcontrol/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"go.uber.org/fx"
)

const csrfCookieName = "evcontrol_csrf"

var ServerModule = fx.Module("server",
	fx.Provide(
		NewHTTPServer,
	),
	fx.Invoke(startServer),
)

func NewHTTPServer(cfg config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           WithCSRF(cfg, engine),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// WithCSRF puts the gorilla/csrf check in front of every unsafe request.
// Without COOKIE_SECURE the app is served over plain HTTP, which gorilla/csrf
// has to be told about or it enforces HTTPS Referer checks.
func WithCSRF(cfg config.Config, next http.Handler) http.Handler {
	if !cfg.CSRF.Enabled {
		return next
	}

	protect := csrf.Protect(
		[]byte(cfg.CSRF.Key),
		csrf.Secure(cfg.Cookie.Secure),
		csrf.Path("/"),
		csrf.CookieName(csrfCookieName),
		csrf.SameSite(csrfSameSite(cfg.Cookie.SameSite)),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailed)),
	)(next)

	if cfg.Cookie.Secure {
		return protect
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		protect.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func csrfFailed(w http.ResponseWriter, r *http.Request) {
	slog.Warn("CSRF check failed", "path", r.URL.Path, "reason", csrf.FailureReason(r))

	resp := httperr.Response{Status: http.StatusForbidden}
	resp.Error.Message = "Invalid CSRF token"
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}

func csrfSameSite(s string) csrf.SameSiteMode {
	switch s {
	case "Strict":
		return csrf.SameSiteStrictMode
	case "None":
		return csrf.SameSiteNoneMode
	default:
		return csrf.SameSiteLaxMode
	}
}

func startServer(lc fx.Lifecycle, srv *http.Server, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting server", "address", srv.Addr, "mode", gin.Mode(), "backend", cfg.Backend.BaseURL)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
