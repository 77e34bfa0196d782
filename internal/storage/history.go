// Package storage keeps in-memory records for the running process.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Compile-time interface check.
var _ domain.CompletionLog = (*History)(nil)

// History records every completed countdown. Safe for concurrent access.
// Registered with the alert dispatcher like any other alerter.
type History struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Completion
	log   *logger.Logger
}

// NewHistory creates an empty history.
func NewHistory(log *logger.Logger) *History {
	return &History{
		byID: make(map[string]domain.Completion),
		log:  log,
	}
}

// Alert records c. A repeated countdown ID overwrites the earlier entry
// and keeps its position.
func (h *History) Alert(ctx context.Context, c domain.Completion) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.byID[c.CountdownID]; !ok {
		h.order = append(h.order, c.CountdownID)
	}
	h.byID[c.CountdownID] = c
	h.log.Debug("recorded completion %s (length=%s, #%d)", c.CountdownID, c.Length, c.Count)
	return nil
}

// List returns completions in the order they were recorded.
func (h *History) List(ctx context.Context) ([]domain.Completion, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.Completion, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.byID[id])
	}
	return out, nil
}

// Total is the summed length of all recorded countdowns.
func (h *History) Total() time.Duration {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var total time.Duration
	for _, c := range h.byID {
		total += c.Length
	}
	return total
}
