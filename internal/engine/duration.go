package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hammamikhairi/ottopomo/internal/domain"
)

// ParseLength turns the length input into a duration. The text must be a
// plain base-10 count of minutes with at most one leading '+': no minus
// sign, no whitespace, no units.
func ParseLength(text string) (time.Duration, error) {
	minutes, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number of minutes", domain.ErrInvalidLength, text)
	}
	if minutes > domain.MaxLengthMinutes {
		return 0, fmt.Errorf("%w: %d minutes is too long", domain.ErrInvalidLength, minutes)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// subtract returns remaining-delta, or ErrUnderflow when delta is larger
// than what is left.
func subtract(remaining, delta time.Duration) (time.Duration, error) {
	if delta > remaining {
		return 0, fmt.Errorf("%w: %s elapsed with %s remaining", domain.ErrUnderflow, delta, remaining)
	}
	return remaining - delta, nil
}

// wholeSeconds reports d truncated to whole seconds. Completion and display
// both work at this resolution.
func wholeSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
