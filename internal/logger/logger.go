// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). Records are written through log/slog so
// every line carries a level and, for named loggers, a component attribute.
// The logger is safe for concurrent use.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// slogOff sits above every level slog emits, silencing the handler.
const slogOff = slog.Level(64)

// String returns the name accepted by ParseLevel.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelNormal:
		return "normal"
	case LevelVerbose:
		return "verbose"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name into a Level. Accepts the canonical names
// plus the common aliases quiet, info and debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet", "none":
		return LevelOff, nil
	case "", "normal", "info":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	default:
		return LevelNormal, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is a leveled logger. All methods are safe for concurrent use.
// Loggers derived with Named share the parent's level.
type Logger struct {
	level *slog.LevelVar
	sl    *slog.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	lv := new(slog.LevelVar)
	lv.Set(toSlog(level))

	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       lv,
		ReplaceAttr: shortTime,
	})
	return &Logger{level: lv, sl: slog.New(h)}
}

// Named returns a logger that tags every record with component=name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{level: l.level, sl: l.sl.With("component", name)}
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	switch lv := l.level.Level(); {
	case lv >= slogOff:
		return LevelOff
	case lv <= slog.LevelDebug:
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.log(slog.LevelDebug, format, args)
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	l.log(slog.LevelInfo, format, args)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.log(slog.LevelWarn, format, args)
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	l.log(slog.LevelError, format, args)
}

func (l *Logger) log(lv slog.Level, format string, args []any) {
	ctx := context.Background()
	if !l.sl.Enabled(ctx, lv) {
		return
	}
	l.sl.Log(ctx, lv, fmt.Sprintf(format, args...))
}

func toSlog(level Level) slog.Level {
	switch level {
	case LevelOff:
		return slogOff
	case LevelVerbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// shortTime trims the timestamp down to wall-clock time.
func shortTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.String(slog.TimeKey, a.Value.Time().Format("15:04:05"))
	}
	return a
}
