package domain

import (
	"testing"
	"time"
)

func TestCompletionMessage(t *testing.T) {
	c := Completion{
		CountdownID: "c1",
		Length:      25 * time.Minute,
		At:          time.Date(2024, 1, 1, 9, 25, 0, 0, time.UTC),
		Count:       3,
	}
	if got, want := c.Message(), "[Pomodoro] 25 minutes is up. (#3, 09:25)"; got != want {
		t.Fatalf("Message() = %q, want %q", got, want)
	}
}

func TestDescribeLength(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{time.Minute, "1 minute"},
		{0, "0 minutes"},
		{2 * time.Minute, "2 minutes"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		if got := describeLength(tt.in); got != tt.want {
			t.Fatalf("describeLength(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
