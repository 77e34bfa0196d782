// Package runner drives the engine without a terminal UI: it starts a
// countdown, feeds it ticks from a TickSource and prints the clock until
// the requested number of countdowns has completed.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hammamikhairi/ottopomo/internal/display"
	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/engine"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// TickSource is a start/stop-able stream of timestamps. Satisfied by
// *scheduler.Feed.
type TickSource interface {
	Sync(need bool) <-chan time.Time
	Stop()
}

// Option configures the runner.
type Option func(*Runner)

// WithCycles sets how many countdowns to complete before returning.
func WithCycles(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.cycles = n
		}
	}
}

// WithOutput sets where the clock is printed. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// Runner is a headless host loop. All engine calls happen on the goroutine
// running Run.
type Runner struct {
	eng    *engine.Engine
	ticks  TickSource
	alerts domain.AlertDispatcher
	log    *logger.Logger
	out    io.Writer
	cycles int
}

// New creates a runner that completes one countdown by default.
func New(eng *engine.Engine, ticks TickSource, alerts domain.AlertDispatcher, log *logger.Logger, opts ...Option) *Runner {
	r := &Runner{
		eng:    eng,
		ticks:  ticks,
		alerts: alerts,
		log:    log,
		out:    io.Discard,
		cycles: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks until the configured number of countdowns complete or ctx is
// cancelled. On cancellation the running countdown is cancelled and
// ctx.Err() is returned. In both cases Run waits for in-flight alerts.
func (r *Runner) Run(ctx context.Context) error {
	defer r.alerts.Wait()
	defer r.ticks.Stop()

	snap, _ := r.eng.Process(engine.StartPressed{})
	tickC := r.ticks.Sync(r.eng.NeedsTicks())
	shown := r.show(snap, "")
	r.log.Info("headless run started (length=%s, cycles=%d)", snap.Length, r.cycles)

	for {
		select {
		case <-ctx.Done():
			snap, _ := r.eng.Process(engine.CancelPressed{})
			r.ticks.Sync(r.eng.NeedsTicks())
			fmt.Fprintf(r.out, "\ncancelled, reset to %s\n", display.FormatClock(snap.Remaining))
			r.log.Info("headless run cancelled after %d completion(s)", snap.Completed)
			return ctx.Err()

		case now := <-tickC:
			snap, done := r.eng.Process(engine.Tick{Now: now})
			tickC = r.ticks.Sync(r.eng.NeedsTicks())
			if done == nil {
				shown = r.show(snap, shown)
				continue
			}

			r.alerts.Fire(ctx, *done)
			fmt.Fprintf(r.out, "\r%s\n", done.Message())
			if snap.Completed >= r.cycles {
				return nil
			}

			snap, _ = r.eng.Process(engine.StartPressed{})
			tickC = r.ticks.Sync(r.eng.NeedsTicks())
			shown = r.show(snap, "")
		}
	}
}

// show prints the clock when its MM:SS text differs from what is on screen.
func (r *Runner) show(s engine.Snapshot, shown string) string {
	clock := display.FormatClock(s.Remaining)
	if clock != shown {
		fmt.Fprintf(r.out, "\r%s", clock)
	}
	return clock
}
