package components

import (
	"evcontrol/internal/handler"
	"evcontrol/internal/handler/api"
	"evcontrol/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBoardHandler,
		middleware.NewAuthMiddleware,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
