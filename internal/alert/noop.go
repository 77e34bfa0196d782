package alert

import (
	"context"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Compile-time interface check.
var _ domain.Alerter = (*NoOp)(nil)

// NoOp is an alerter that does nothing. Used when alerts are muted.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a no-op alerter.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Alert does nothing.
func (n *NoOp) Alert(ctx context.Context, c domain.Completion) error {
	n.log.Debug("alert no-op: countdown %s muted", c.CountdownID)
	return nil
}
