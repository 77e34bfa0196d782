package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/hammamikhairi/ottopomo/internal/display"
	"github.com/hammamikhairi/ottopomo/internal/domain"
)

// PrintSummary writes a table of the completed countdowns followed by the
// total time counted down. Nothing is written when list is empty.
func PrintSummary(w io.Writer, list []domain.Completion) {
	if len(list) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault

	t.AppendHeader(table.Row{"#", "Length", "Finished", "Countdown"})

	var total time.Duration
	for _, c := range list {
		total += c.Length
		t.AppendRow(table.Row{
			c.Count,
			display.FormatClock(c.Length),
			c.At.Format("15:04:05"),
			shortID(c.CountdownID),
		})
	}
	t.AppendFooter(table.Row{"", total.String(), "", fmt.Sprintf("%d done", len(list))})

	fmt.Fprintln(w)
	t.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
