package components

import (
	"evcontrol/internal/domain/calendar"
	"evcontrol/internal/pkg/clock"
	"evcontrol/internal/pkg/config"
	"evcontrol/internal/usecase/board"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewBoardSettings,
	),
)

func NewBoardSettings(cfg config.Config) (board.Settings, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return board.Settings{}, err
	}
	weekStart, err := calendar.ParseWeekStart(cfg.Calendar.WeekStart)
	if err != nil {
		return board.Settings{}, err
	}
	return board.Settings{
		Location:             loc,
		WeekStart:            weekStart,
		NotificationDuration: cfg.Calendar.NotificationDuration,
	}, nil
}
