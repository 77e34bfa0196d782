// Package engine implements the countdown timer state machine. The engine
// owns no goroutines or timers: hosts feed it events one at a time and ask
// NeedsTicks whether they should keep delivering Tick events.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithLength sets the initial countdown length. Negative values clamp to zero.
func WithLength(d time.Duration) Option {
	return func(e *Engine) {
		e.length = max(d, 0)
	}
}

// WithClock sets the time source used when a countdown starts.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine is the countdown state machine. It is not safe for concurrent use;
// the owning host must serialize calls to Process.
type Engine struct {
	length    time.Duration
	remaining time.Duration
	state     State

	countdownID string
	completed   int

	now   func() time.Time
	newID func() string
	log   *logger.Logger
}

// New creates an idle engine with remaining equal to the configured length.
func New(log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		length: domain.DefaultLength,
		state:  Idle{},
		now:    time.Now,
		newID:  uuid.NewString,
		log:    log,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.remaining = e.length
	return e
}

// Process applies one event and returns the resulting snapshot. The returned
// completion is non-nil exactly when this event finished a countdown.
func (e *Engine) Process(ev Event) (Snapshot, *domain.Completion) {
	var done *domain.Completion

	switch ev := ev.(type) {
	case TogglePressed:
		if e.ticking() {
			e.cancel()
		} else {
			e.start()
		}
	case StartPressed:
		if !e.ticking() {
			e.start()
		}
	case CancelPressed:
		if e.ticking() {
			e.cancel()
		}
	case Tick:
		done = e.tick(ev.Now)
	case LengthChanged:
		e.setLength(ev.Text)
	default:
		e.log.Warn("engine: ignoring unknown event %T", ev)
	}

	return e.Snapshot(), done
}

// NeedsTicks reports whether the host should be delivering Tick events.
func (e *Engine) NeedsTicks() bool {
	return e.ticking()
}

// Snapshot returns the current state without changing it.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:       e.state,
		Length:      e.length,
		Remaining:   e.remaining,
		CountdownID: e.countdownID,
		Completed:   e.completed,
	}
}

func (e *Engine) ticking() bool {
	_, ok := e.state.(Ticking)
	return ok
}

func (e *Engine) start() {
	e.countdownID = e.newID()
	e.state = Ticking{LastTick: e.now()}
	e.log.Debug("engine: countdown %s started (remaining=%s)", e.countdownID, e.remaining)
}

func (e *Engine) cancel() {
	e.log.Debug("engine: countdown %s cancelled with %s left", e.countdownID, e.remaining)
	e.reset()
}

// reset returns to Idle with the full configured length.
func (e *Engine) reset() {
	e.state = Idle{}
	e.remaining = e.length
	e.countdownID = ""
}

func (e *Engine) tick(now time.Time) *domain.Completion {
	st, ok := e.state.(Ticking)
	if !ok {
		// Tick feed raced with a cancel or completion.
		e.log.Debug("engine: stale tick ignored")
		return nil
	}

	delta := now.Sub(st.LastTick)
	if delta < 0 {
		e.log.Warn("engine: tick is %s older than the previous one, no time elapsed", -delta)
		delta = 0
		now = st.LastTick
	}

	remaining, err := subtract(e.remaining, delta)
	if err != nil {
		e.log.Debug("engine: %v, clamping to zero", err)
	}
	e.remaining = remaining
	e.state = Ticking{LastTick: now}

	if wholeSeconds(e.remaining) > 0 {
		return nil
	}

	e.completed++
	done := &domain.Completion{
		CountdownID: e.countdownID,
		Length:      e.length,
		At:          now,
		Count:       e.completed,
	}
	e.log.Info("countdown %s complete (length=%s, total=%d)", done.CountdownID, done.Length, done.Count)
	e.reset()
	return done
}

func (e *Engine) setLength(text string) {
	d, err := ParseLength(text)
	if err != nil {
		e.log.Debug("engine: length input ignored: %v", err)
		return
	}

	e.length = d
	if e.ticking() {
		e.remaining = min(e.remaining, d)
	} else {
		e.remaining = d
	}
	e.log.Debug("engine: length set to %s (remaining=%s)", e.length, e.remaining)
}
