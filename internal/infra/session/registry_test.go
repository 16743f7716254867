//go:build unit

package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"evcontrol/internal/infra/session"
	"evcontrol/internal/pkg/clock"
	"evcontrol/internal/pkg/config"
	"evcontrol/internal/pkg/errs"
	"evcontrol/internal/usecase/board"
	boardmock "evcontrol/tests/mock/board"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRegistry(t *testing.T, clk clock.Clock, ttl time.Duration) *session.Registry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := boardmock.NewMockReservationAPI(gomock.NewController(t))
	factory := func() *board.Board {
		return board.NewBoard(api, clk, logger, board.Settings{Location: time.UTC})
	}
	return session.NewRegistry(config.SessionConfig{IdleTTL: ttl, SweepSchedule: "@every 1m"}, factory, clk, logger)
}

func TestRegistry(t *testing.T) {
	start := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	t.Run("create then get", func(t *testing.T) {
		reg := newRegistry(t, clock.NewMockClock(start), time.Hour)

		id, b := reg.Create()
		got, err := reg.Get(id)
		require.NoError(t, err)
		assert.Same(t, b, got)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("sessions are independent", func(t *testing.T) {
		reg := newRegistry(t, clock.NewMockClock(start), time.Hour)

		id1, b1 := reg.Create()
		id2, b2 := reg.Create()
		assert.NotEqual(t, id1, id2)
		assert.NotSame(t, b1, b2)
	})

	t.Run("unknown session", func(t *testing.T) {
		reg := newRegistry(t, clock.NewMockClock(start), time.Hour)

		_, err := reg.Get(uuid.New())
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("sweep drops idle sessions only", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		reg := newRegistry(t, clk, time.Hour)

		idle, _ := reg.Create()
		clk.Add(30 * time.Minute)
		active, _ := reg.Create()
		clk.Add(40 * time.Minute)

		assert.Equal(t, 1, reg.Sweep())
		_, err := reg.Get(idle)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
		_, err = reg.Get(active)
		assert.NoError(t, err)
	})

	t.Run("get refreshes the idle time", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		reg := newRegistry(t, clk, time.Hour)

		id, _ := reg.Create()
		clk.Add(50 * time.Minute)
		_, err := reg.Get(id)
		require.NoError(t, err)
		clk.Add(50 * time.Minute)

		assert.Equal(t, 0, reg.Sweep())
	})

	t.Run("zero ttl never sweeps", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		reg := newRegistry(t, clk, 0)
		reg.Create()
		clk.Add(1000 * time.Hour)

		assert.Equal(t, 0, reg.Sweep())
	})
}

func TestSweeper(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		reg := newRegistry(t, clock.NewMockClock(time.Now()), time.Hour)
		sw := session.NewSweeper(config.SessionConfig{SweepSchedule: "every now and then"}, reg, logger)
		assert.Error(t, sw.Start())
	})

	t.Run("start and stop", func(t *testing.T) {
		reg := newRegistry(t, clock.NewMockClock(time.Now()), time.Hour)
		sw := session.NewSweeper(config.SessionConfig{SweepSchedule: "@every 1h"}, reg, logger)
		require.NoError(t, sw.Start())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, sw.Stop(ctx))
	})
}
