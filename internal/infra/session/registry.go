package session

import (
	"log/slog"
	"sync"
	"time"

	"evcontrol/internal/pkg/clock"
	"evcontrol/internal/pkg/config"
	"evcontrol/internal/pkg/errs"
	"evcontrol/internal/usecase/board"

	"github.com/google/uuid"
)

// BoardFactory builds the board of a new session
type BoardFactory func() *board.Board

type entry struct {
	board    *board.Board
	lastSeen time.Time
}

// Registry keeps one board per browser session in memory. Nothing survives a
// restart: a session whose id is unknown is simply started again.
type Registry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry

	newBoard BoardFactory
	clock    clock.Clock
	idleTTL  time.Duration
	logger   *slog.Logger
}

func NewRegistry(cfg config.SessionConfig, newBoard BoardFactory, clk clock.Clock, logger *slog.Logger) *Registry {
	return &Registry{
		entries:  make(map[uuid.UUID]*entry),
		newBoard: newBoard,
		clock:    clk,
		idleTTL:  cfg.IdleTTL,
		logger:   logger,
	}
}

// Get returns the board of id and marks the session as used
func (r *Registry) Get(id uuid.UUID) (*board.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrSessionNotFound, "session %s", id)
	}
	e.lastSeen = r.clock.Now()
	return e.board, nil
}

// Create starts a session with a fresh board. The caller mounts it.
func (r *Registry) Create() (uuid.UUID, *board.Board) {
	id := uuid.New()
	b := r.newBoard()

	r.mu.Lock()
	r.entries[id] = &entry{board: b, lastSeen: r.clock.Now()}
	r.mu.Unlock()

	r.logger.Debug("session created", "session_id", id)
	return id, b
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops sessions idle for longer than the configured TTL and returns
// how many were dropped.
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := r.clock.Now().Add(-r.idleTTL)

	r.mu.Lock()
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	remaining := len(r.entries)
	r.mu.Unlock()

	if removed > 0 {
		r.logger.Info("idle sessions swept", "removed", removed, "remaining", remaining)
	}
	return removed
}
