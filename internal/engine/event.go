package engine

import "time"

// Event is an input to Engine.Process.
type Event interface {
	isEvent()
}

// TogglePressed starts an idle timer or cancels a running one.
type TogglePressed struct{}

// StartPressed starts an idle timer. Ignored while ticking.
type StartPressed struct{}

// CancelPressed cancels a running timer. Ignored while idle.
type CancelPressed struct{}

// Tick advances a running countdown to Now.
type Tick struct {
	Now time.Time
}

// LengthChanged carries the raw text of the length input, in minutes.
type LengthChanged struct {
	Text string
}

func (TogglePressed) isEvent() {}
func (StartPressed) isEvent()  {}
func (CancelPressed) isEvent() {}
func (Tick) isEvent()          {}
func (LengthChanged) isEvent() {}
