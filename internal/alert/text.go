package alert

import (
	"context"
	"fmt"
	"io"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Alerter = (*TextAlerter)(nil)
	_ domain.Alerter = (*BellAlerter)(nil)
)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
)

// PrintFunc is a function used to print formatted output.
// Matches the signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...any)

// TextAlerter prints a completion line.
type TextAlerter struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewTextAlerter creates a text alerter.
// If printFn is nil, fmt.Printf is used.
func NewTextAlerter(log *logger.Logger, printFn PrintFunc) *TextAlerter {
	if printFn == nil {
		printFn = func(format string, a ...any) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &TextAlerter{log: log, printFn: printFn}
}

// Alert prints the completion message in bold red.
func (t *TextAlerter) Alert(ctx context.Context, c domain.Completion) error {
	msg := c.Message()
	t.log.Debug("alert text: %s", msg)
	t.printFn("%s%s%s%s", red, bold, msg, reset)
	return nil
}

// BellAlerter rings the terminal bell.
type BellAlerter struct {
	w io.Writer
}

// NewBellAlerter creates a bell alerter writing to w.
func NewBellAlerter(w io.Writer) *BellAlerter {
	return &BellAlerter{w: w}
}

// Alert writes a BEL character.
func (b *BellAlerter) Alert(ctx context.Context, c domain.Completion) error {
	_, err := io.WriteString(b.w, "\a")
	return err
}
