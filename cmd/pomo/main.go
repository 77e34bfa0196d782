// Pomo is a Pomodoro countdown timer for the terminal.
//
// Usage:
//
//	pomo [--minutes N] [--sound ring.wav] [--mute] [--bell] [-v|--quiet]
//	pomo run [--cycles N]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottopomo/internal/alert"
	"github.com/hammamikhairi/ottopomo/internal/config"
	"github.com/hammamikhairi/ottopomo/internal/display"
	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/engine"
	"github.com/hammamikhairi/ottopomo/internal/logger"
	"github.com/hammamikhairi/ottopomo/internal/runner"
	"github.com/hammamikhairi/ottopomo/internal/scheduler"
	"github.com/hammamikhairi/ottopomo/internal/storage"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pomo",
		Short:        "Pomodoro countdown timer",
		Long:         "Set a length in minutes, press enter to start, and get a ring when the countdown hits zero.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runTUI,
	}
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newRunCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	var cycles int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run countdowns without the interactive UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd, cycles)
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", 1, "number of countdowns to complete before exiting")
	return cmd
}

// app holds what both front ends share.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	eng      *engine.Engine
	history  *storage.History
	closeLog func()
}

func setup(cmd *cobra.Command) (*app, error) {
	fs := cmd.Flags()

	cfg, err := config.Load(config.ConfigPath(fs))
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(fs); err != nil {
		return nil, err
	}

	logOut, closeLog := openLog(cfg.LogFile)

	log := logger.New(cfg.Level(), logOut)

	// Redirect Go's default log package (used by third-party libs) to the
	// same output so it doesn't spam the terminal. Quiet silences it too.
	stdlog.SetFlags(stdlog.Ltime)
	if log.GetLevel() == logger.LevelOff {
		stdlog.SetOutput(io.Discard)
	} else {
		stdlog.SetOutput(logOut)
	}
	log.Debug("config: length=%s tick=%s sound=%q mute=%v bell=%v",
		cfg.Length(), cfg.TickInterval, cfg.Sound, cfg.Mute, cfg.Bell)

	eng := engine.New(log.Named("engine"), engine.WithLength(cfg.Length()))
	return &app{
		cfg:      cfg,
		log:      log,
		eng:      eng,
		history:  storage.NewHistory(log.Named("history")),
		closeLog: closeLog,
	}, nil
}

// openLog opens the log destination. Falls back to stderr when the file
// can't be opened.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not create log dir %s: %v (falling back to stderr)\n", dir, err)
			return os.Stderr, func() {}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

// alerters builds the completion alert chain. The sound degrades to the
// terminal bell when no audio device is available.
func (a *app) alerters(text domain.Alerter) []domain.Alerter {
	out := []domain.Alerter{a.history}
	if text != nil {
		out = append(out, text)
	}

	bell := a.cfg.Bell
	switch {
	case a.cfg.Mute:
		out = append(out, alert.NewNoOp(a.log.Named("alert")))
	default:
		if sound, err := a.soundAlerter(); err != nil {
			a.log.Error("sound disabled: %v", err)
			bell = true
		} else {
			out = append(out, sound)
		}
	}

	if bell {
		out = append(out, alert.NewBellAlerter(os.Stdout))
	}
	return out
}

func (a *app) soundAlerter() (*alert.SoundAlerter, error) {
	var wav []byte
	if a.cfg.Sound != "" {
		data, err := alert.LoadSound(a.cfg.Sound)
		if err != nil {
			a.log.Warn("using built-in chime: %v", err)
		} else {
			wav = data
		}
	}

	player, err := alert.NewPlayer(a.log.Named("player"))
	if err != nil {
		return nil, err
	}
	return alert.NewSoundAlerter(player, wav, a.log.Named("alert"))
}

// summary logs what was completed during this process.
func (a *app) summary() {
	list, _ := a.history.List(context.Background())
	a.log.Info("session summary: %d countdown(s) completed, %s in total", len(list), a.history.Total())
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var ui *display.UI
	text := alert.NewTextAlerter(a.log.Named("alert"), func(format string, args ...any) {
		ui.Printf(format, args...)
	})
	alerts := alert.NewDispatcher(a.log.Named("alert"), a.alerters(text))
	ui = display.NewUI(a.eng, alerts, a.log.Named("display"),
		display.WithTickInterval(a.cfg.TickInterval),
	)

	fmt.Print(display.RenderBanner("enter start/cancel · type minutes · esc quit"))

	a.log.Info("pomo started (length=%s)", a.cfg.Length())
	err = ui.Run(ctx)
	alerts.Wait()
	a.summary()
	if err != nil {
		a.log.Error("display: %v", err)
		return err
	}
	return nil
}

func runHeadless(cmd *cobra.Command, cycles int) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	alerts := alert.NewDispatcher(a.log.Named("alert"), a.alerters(nil))
	feed := scheduler.New(a.log.Named("scheduler"), scheduler.WithInterval(a.cfg.TickInterval))
	a.log.Debug("headless: ticking every %s", feed.Interval())
	r := runner.New(a.eng, feed, alerts, a.log.Named("runner"),
		runner.WithCycles(cycles),
		runner.WithOutput(os.Stdout),
	)

	err = r.Run(ctx)
	list, _ := a.history.List(context.Background())
	runner.PrintSummary(os.Stdout, list)
	a.summary()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
