package bootstrap

import (
	"evcontrol/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	AppModule,
	ServerModule,
)

// AppModule is everything between the config and the listening server
var AppModule = fx.Options(
	LoggerModule,
	JWTModule,
	BackendModule,
	components.UseCaseModule,
	SessionModule,
	components.HandlerModule,
)
