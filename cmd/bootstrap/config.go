package bootstrap

import (
	"evcontrol/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigPartsOption,
)

// ConfigPartsOption exposes the config groups that constructors take directly
var ConfigPartsOption = fx.Provide(
	func(cfg config.Config) config.AuthConfig { return cfg.Auth },
	func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	func(cfg config.Config) config.SessionConfig { return cfg.Session },
	func(cfg config.Config) config.BackendConfig { return cfg.Backend },
)
