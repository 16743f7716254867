package bootstrap

import (
	"evcontrol/internal/infra/apiclient"
	"evcontrol/internal/usecase/board"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			apiclient.NewClient,
			fx.As(new(board.ReservationAPI)),
		),
	),
)
