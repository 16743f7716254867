package bootstrap

import (
	"evcontrol/internal/pkg/config"
	"evcontrol/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// the session token lives as long as an idle session may
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Session.Secret, cfg.Session.IdleTTL)
}
