package session

import (
	"context"
	"log/slog"

	"evcontrol/internal/pkg/config"
	"evcontrol/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Sweeper runs Registry.Sweep on the configured cron schedule
type Sweeper struct {
	cron     *cron.Cron
	registry *Registry
	schedule string
	logger   *slog.Logger
}

func NewSweeper(cfg config.SessionConfig, registry *Registry, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		cron:     cron.New(),
		registry: registry,
		schedule: cfg.SweepSchedule,
		logger:   logger,
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.registry.Sweep() }); err != nil {
		return errs.Wrapf(err, "invalid sweep schedule %q", s.schedule)
	}
	s.cron.Start()
	s.logger.Info("session sweeper started", "schedule", s.schedule)
	return nil
}

// Stop waits for a running sweep or for ctx, whichever comes first
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
