package alert

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Compile-time interface check.
var _ domain.AlertDispatcher = (*Dispatcher)(nil)

// DefaultAlertTimeout caps how long a single alerter may run.
const DefaultAlertTimeout = 30 * time.Second

// DispatcherOption configures the dispatcher.
type DispatcherOption func(*Dispatcher)

// WithAlertTimeout sets the per-alerter deadline.
func WithAlertTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// Dispatcher fans a completion out to every alerter without blocking the
// caller. Alerter errors and panics are logged and go no further.
type Dispatcher struct {
	alerters []domain.Alerter
	timeout  time.Duration
	log      *logger.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given alerters.
func NewDispatcher(log *logger.Logger, alerters []domain.Alerter, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		alerters: alerters,
		timeout:  DefaultAlertTimeout,
		log:      log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fire starts every alerter on its own goroutine and returns immediately.
func (d *Dispatcher) Fire(ctx context.Context, c domain.Completion) {
	d.log.Debug("dispatching countdown %s to %d alerter(s)", c.CountdownID, len(d.alerters))
	for _, a := range d.alerters {
		d.wg.Add(1)
		go d.run(ctx, a, c)
	}
}

// Wait blocks until all fired alerts have returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) run(ctx context.Context, a domain.Alerter, c domain.Completion) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("alert: %T panicked: %v", a, r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := a.Alert(ctx, c); err != nil {
		d.log.Error("alert: %T failed: %v", a, err)
	}
}
