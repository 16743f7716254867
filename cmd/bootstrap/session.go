package bootstrap

import (
	"context"
	"log/slog"

	"evcontrol/internal/infra/session"
	"evcontrol/internal/pkg/clock"
	"evcontrol/internal/usecase/board"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewBoardFactory,
		session.NewRegistry,
		session.NewSweeper,
	),
	fx.Invoke(runSweeper),
)

func NewBoardFactory(api board.ReservationAPI, clk clock.Clock, logger *slog.Logger, settings board.Settings) session.BoardFactory {
	return func() *board.Board {
		return board.NewBoard(api, clk, logger, settings)
	}
}

func runSweeper(lc fx.Lifecycle, sweeper *session.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
