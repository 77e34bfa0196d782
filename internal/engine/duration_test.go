package engine

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/hammamikhairi/ottopomo/internal/domain"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		text    string
		want    time.Duration
		wantErr bool
	}{
		{"0", 0, false},
		{"1", time.Minute, false},
		{"25", 25 * time.Minute, false},
		{"007", 7 * time.Minute, false},
		{strconv.FormatUint(domain.MaxLengthMinutes, 10), time.Duration(domain.MaxLengthMinutes) * time.Minute, false},
		{strconv.FormatUint(domain.MaxLengthMinutes+1, 10), 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"+5", 5 * time.Minute, false},
		{"+0", 0, false},
		{"+", 0, true},
		{"++5", 0, true},
		{"+-5", 0, true},
		{"-5", 0, true},
		{"5 ", 0, true},
		{"5m", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseLength(tt.text)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidLength) {
					t.Fatalf("expected ErrInvalidLength, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	got, err := subtract(10*time.Second, 4*time.Second)
	if err != nil || got != 6*time.Second {
		t.Fatalf("expected 6s, got %s (err=%v)", got, err)
	}

	got, err = subtract(10*time.Second, 10*time.Second)
	if err != nil || got != 0 {
		t.Fatalf("expected 0, got %s (err=%v)", got, err)
	}

	got, err = subtract(time.Second, 2*time.Second)
	if !errors.Is(err, domain.ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
	if got != 0 {
		t.Fatalf("expected clamp to 0 on underflow, got %s", got)
	}
}
