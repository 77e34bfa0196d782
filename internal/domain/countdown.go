// Package domain holds the types and ports shared by the timer engine and
// the hosts that drive it.
package domain

import (
	"fmt"
	"time"
)

// DefaultLength is the countdown length a fresh engine starts with.
const DefaultLength = 2 * time.Minute

// MaxLengthMinutes bounds user-entered lengths so minutes*60s always fits
// in a time.Duration.
const MaxLengthMinutes = uint64(1<<63-1) / uint64(time.Minute)

// Completion describes a countdown that reached zero. It is the payload of
// the completion signal handed to alerters.
type Completion struct {
	CountdownID string
	Length      time.Duration
	At          time.Time
	Count       int // completions so far, including this one
}

// Message is the human-readable completion line.
func (c Completion) Message() string {
	return fmt.Sprintf("[Pomodoro] %s is up. (#%d, %s)", describeLength(c.Length), c.Count, c.At.Format("15:04"))
}

func describeLength(d time.Duration) string {
	if d%time.Minute != 0 {
		return d.String()
	}
	if m := int64(d / time.Minute); m != 1 {
		return fmt.Sprintf("%d minutes", m)
	}
	return "1 minute"
}
