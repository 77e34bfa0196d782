// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] renders the countdown as MM:SS, a Start/Cancel button and the
// length input, and forwards key presses to the engine as events. Ticks
// are requested with tea.Tick only while the engine reports it needs them,
// and at most one tick is in flight at a time. Output printed through
// [UI.Printf] lands above the rendered area.
package display

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/engine"
	"github.com/hammamikhairi/ottopomo/internal/logger"
	"github.com/hammamikhairi/ottopomo/internal/scheduler"
)

const windowTitle = "Pomodoro and pause"

// ── Styles ───────────────────────────────────────────────────────

var (
	clockIdleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#d4d4d8"))

	clockRunStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fde68a"))

	startButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Background(lipgloss.Color("#166534")).
				Foreground(lipgloss.Color("#bbf7d0"))

	cancelButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Background(lipgloss.Color("#7f1d1d")).
				Foreground(lipgloss.Color("#fca5a5"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	// Dimmed zinc for hints and counters.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))
)

// ── UI ───────────────────────────────────────────────────────────

// Option configures the UI.
type Option func(*UI)

// WithTickInterval sets the tick cadence while a countdown runs.
func WithTickInterval(d time.Duration) Option {
	return func(u *UI) {
		if d > 0 {
			u.interval = d
		}
	}
}

// UI hosts the engine inside a Bubble Tea program.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely call
// [UI.Printf] at any time.
type UI struct {
	program  *tea.Program
	eng      *engine.Engine
	alerts   domain.AlertDispatcher
	log      *logger.Logger
	interval time.Duration
	done     atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(eng *engine.Engine, alerts domain.AlertDispatcher, log *logger.Logger, opts ...Option) *UI {
	u := &UI{
		eng:      eng,
		alerts:   alerts,
		log:      log,
		interval: scheduler.DefaultInterval,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Printf prints formatted text above the timer. Thread-safe.
// If the program isn't running, falls back to fmt.Printf.
func (u *UI) Printf(format string, a ...any) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// Run starts the Bubble Tea event loop. Blocks until the user quits or ctx
// is cancelled.
func (u *UI) Run(ctx context.Context) error {
	m := newModel(ctx, u.eng, u.alerts, u.interval)

	u.program = tea.NewProgram(m, tea.WithContext(ctx))
	_, err := u.program.Run()
	u.done.Store(true)

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		u.log.Debug("display: stopped by context: %v", ctx.Err())
		return nil
	}
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx      context.Context
	eng      *engine.Engine
	alerts   domain.AlertDispatcher
	interval time.Duration
	input    textinput.Model
	snap     engine.Snapshot
	tickLive bool // a tick command is scheduled and not yet delivered
	width    int
}

// Messages.
type tickMsg time.Time

func newModel(ctx context.Context, eng *engine.Engine, alerts domain.AlertDispatcher, interval time.Duration) model {
	ti := textinput.New()
	ti.Placeholder = "pomo length"
	ti.Prompt = "minutes: "
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.CharLimit = 9
	ti.Width = 12
	ti.Focus()

	return model{
		ctx:      ctx,
		eng:      eng,
		alerts:   alerts,
		interval: interval,
		input:    ti,
		snap:     eng.Snapshot(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle(windowTitle),
	)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter, tea.KeyCtrlS:
			cmd := m.process(engine.TogglePressed{})
			return m, cmd
		}

		before := m.input.Value()
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		if v := m.input.Value(); v != before {
			cmd := m.process(engine.LengthChanged{Text: v})
			return m, tea.Batch(inputCmd, cmd)
		}
		return m, inputCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.tickLive = false
		cmd := m.process(engine.Tick{Now: time.Time(msg)})
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// process feeds one event to the engine, fires alerts on completion and
// keeps exactly one tick scheduled while the engine needs ticks.
func (m *model) process(ev engine.Event) tea.Cmd {
	prev := m.snap
	snap, done := m.eng.Process(ev)
	m.snap = snap

	var cmds []tea.Cmd
	if done != nil {
		m.alerts.Fire(m.ctx, *done)
	}
	if m.eng.NeedsTicks() && !m.tickLive {
		m.tickLive = true
		cmds = append(cmds, tickCmd(m.interval))
	}
	if prev.Ticking() != snap.Ticking() || FormatClock(prev.Remaining) != FormatClock(snap.Remaining) {
		cmds = append(cmds, tea.SetWindowTitle(titleFor(snap)))
	}
	return tea.Batch(cmds...)
}

func (m model) View() string {
	clock := clockIdleStyle
	button := startButtonStyle
	if m.snap.Ticking() {
		clock = clockRunStyle
		button = cancelButtonStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		clock.Render(FormatClock(m.snap.Remaining)),
		"",
		button.Render(ButtonLabel(m.snap)),
		"",
		m.input.View(),
		secondaryStyle.Render(fmt.Sprintf("completed: %d", m.snap.Completed)),
		secondaryStyle.Render("enter start/cancel · esc quit"),
	)

	if m.width > 0 {
		content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return "\n" + content + "\n"
}

// ── Helpers ──────────────────────────────────────────────────────

// FormatClock renders d as zero-padded MM:SS. Hours are dropped, so the
// display wraps every 60 minutes.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", (secs%3600)/60, secs%60)
}

// ButtonLabel is the toggle button text for a snapshot.
func ButtonLabel(s engine.Snapshot) string {
	if s.Ticking() {
		return "Cancel"
	}
	return "Start"
}

func titleFor(s engine.Snapshot) string {
	if s.Ticking() {
		return FormatClock(s.Remaining) + " · " + windowTitle
	}
	return windowTitle
}
