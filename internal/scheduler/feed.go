// Package scheduler delivers the periodic tick feed a running countdown
// needs. The host owns the feed and turns it on and off as the engine's
// NeedsTicks answer changes.
package scheduler

import (
	"sync"
	"time"

	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// DefaultInterval is the tick cadence. Display and completion work in whole
// seconds, so anything well under a second is indistinguishable.
const DefaultInterval = 100 * time.Millisecond

// Option configures the feed.
type Option func(*Feed)

// WithInterval sets how often the feed fires while started.
func WithInterval(d time.Duration) Option {
	return func(f *Feed) {
		if d > 0 {
			f.interval = d
		}
	}
}

// Feed is a start/stop-able ticker. While stopped, C returns a nil channel
// so a select case on it never fires.
type Feed struct {
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	ticker *time.Ticker
}

// New creates a stopped feed.
func New(log *logger.Logger, opts ...Option) *Feed {
	f := &Feed{
		interval: DefaultInterval,
		log:      log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Interval returns the configured cadence.
func (f *Feed) Interval() time.Duration { return f.interval }

// Start begins delivering ticks. No-op if already running.
func (f *Feed) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ticker != nil {
		return
	}
	f.ticker = time.NewTicker(f.interval)
	f.log.Debug("tick feed started (interval=%s)", f.interval)
}

// Stop halts delivery. Safe to call when already stopped.
func (f *Feed) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ticker == nil {
		return
	}
	f.ticker.Stop()
	f.ticker = nil
	f.log.Debug("tick feed stopped")
}

func (f *Feed) running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticker != nil
}

// C returns the tick channel, or nil while stopped. Callers should fetch it
// again after every Start/Stop.
func (f *Feed) C() <-chan time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ticker == nil {
		return nil
	}
	return f.ticker.C
}

// Sync starts or stops the feed to match need. Returns the channel to
// select on next.
func (f *Feed) Sync(need bool) <-chan time.Time {
	if need {
		f.Start()
	} else {
		f.Stop()
	}
	return f.C()
}
