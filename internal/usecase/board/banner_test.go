//go:build unit

package board_test

import (
	"testing"
	"time"

	"evcontrol/internal/usecase/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) {
	start := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	t.Run("expires after its duration", func(t *testing.T) {
		b := board.NewBanner(3 * time.Second)
		b.Show(board.NotificationSuccess, board.MsgCreated, start)

		n, ok := b.Current(start.Add(2999 * time.Millisecond))
		require.True(t, ok)
		assert.Equal(t, board.MsgCreated, n.Message)
		assert.Equal(t, time.Millisecond, n.Remaining(start.Add(2999*time.Millisecond)))

		_, ok = b.Current(start.Add(3 * time.Second))
		assert.False(t, ok)
	})

	t.Run("a new notification replaces and restarts", func(t *testing.T) {
		b := board.NewBanner(3 * time.Second)
		b.Show(board.NotificationError, board.MsgCreateFailed, start)
		b.Show(board.NotificationError, board.MsgListFailed, start.Add(2*time.Second))

		n, ok := b.Current(start.Add(4 * time.Second))
		require.True(t, ok)
		assert.Equal(t, board.MsgListFailed, n.Message)
		assert.Equal(t, board.NotificationError, n.Kind)

		_, ok = b.Current(start.Add(5 * time.Second))
		assert.False(t, ok)
	})

	t.Run("non positive duration falls back to the default", func(t *testing.T) {
		b := board.NewBanner(0)
		b.Show(board.NotificationSuccess, board.MsgDeleted, start)

		_, ok := b.Current(start.Add(board.DefaultNotificationDuration - time.Millisecond))
		assert.True(t, ok)
	})

	t.Run("empty banner", func(t *testing.T) {
		_, ok := board.NewBanner(time.Second).Current(start)
		assert.False(t, ok)
	})
}
