package engine

import "time"

// State is the timer's state tag. It is a closed set: Idle or Ticking.
type State interface {
	isState()
}

// Idle means no countdown is running and no tick feed is needed.
type Idle struct{}

// Ticking is an active countdown. LastTick is the timestamp the next tick's
// elapsed time is measured from.
type Ticking struct {
	LastTick time.Time
}

func (Idle) isState()    {}
func (Ticking) isState() {}

// Snapshot is a read-only view of the engine for rendering.
type Snapshot struct {
	State       State
	Length      time.Duration
	Remaining   time.Duration
	CountdownID string // empty while idle
	Completed   int
}

// Ticking reports whether the snapshot was taken during a countdown.
func (s Snapshot) Ticking() bool {
	_, ok := s.State.(Ticking)
	return ok
}
