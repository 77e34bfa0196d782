package config

import (
	"github.com/spf13/pflag"

	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Flag names.
const (
	FlagConfig  = "config"
	FlagMinutes = "minutes"
	FlagTick    = "tick"
	FlagSound   = "sound"
	FlagMute    = "mute"
	FlagBell    = "bell"
	FlagVerbose = "verbose"
	FlagQuiet   = "quiet"
	FlagLogFile = "log-file"
)

// RegisterFlags defines the settings flags on fs. Defaults shown in help
// are the built-in ones; only flags the user sets override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(FlagConfig, DefaultPath(), "path to the YAML config file")
	fs.Uint64(FlagMinutes, def.LengthMinutes, "countdown length in minutes")
	fs.Duration(FlagTick, def.TickInterval, "tick interval while counting down")
	fs.String(FlagSound, "", "WAV file to play on completion (24kHz mono 16-bit)")
	fs.Bool(FlagMute, false, "disable the completion sound")
	fs.Bool(FlagBell, false, "ring the terminal bell on completion")
	fs.CountP(FlagVerbose, "v", "enable verbose/debug logging")
	fs.Bool(FlagQuiet, false, "disable all logging")
	fs.String(FlagLogFile, def.LogFile, "file to write logs to (use \"stderr\" to log to console)")
}

// ConfigPath returns the --config value.
func ConfigPath(fs *pflag.FlagSet) string {
	p, _ := fs.GetString(FlagConfig)
	return p
}

// ApplyFlags overrides c with every flag the user explicitly set.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}

	set(FlagMinutes, func() (e error) { c.LengthMinutes, e = fs.GetUint64(FlagMinutes); return })
	set(FlagTick, func() (e error) { c.TickInterval, e = fs.GetDuration(FlagTick); return })
	set(FlagSound, func() (e error) { c.Sound, e = fs.GetString(FlagSound); return })
	set(FlagMute, func() (e error) { c.Mute, e = fs.GetBool(FlagMute); return })
	set(FlagBell, func() (e error) { c.Bell, e = fs.GetBool(FlagBell); return })
	set(FlagLogFile, func() (e error) { c.LogFile, e = fs.GetString(FlagLogFile); return })
	set(FlagVerbose, func() error {
		if n, e := fs.GetCount(FlagVerbose); e != nil || n == 0 {
			return e
		}
		c.LogLevel = logger.LevelVerbose.String()
		return nil
	})
	set(FlagQuiet, func() error {
		quiet, e := fs.GetBool(FlagQuiet)
		if quiet {
			c.LogLevel = logger.LevelOff.String()
		}
		return e
	})
	if err != nil {
		return err
	}
	return c.Validate()
}
