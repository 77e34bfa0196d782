// Package config loads runtime settings. Sources are layered, lowest to
// highest precedence: built-in defaults, the YAML config file, environment
// variables (including a .env file loaded by the caller), and command-line
// flags that were explicitly set. Nothing is ever written back.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/ottopomo/internal/domain"
	"github.com/hammamikhairi/ottopomo/internal/logger"
)

// Tick interval bounds. Ticks faster than MinTickInterval only burn CPU;
// slower than MaxTickInterval and the display skips seconds.
const (
	MinTickInterval = 10 * time.Millisecond
	MaxTickInterval = time.Second
)

// Env var names.
const (
	EnvLength       = "POMO_LENGTH"
	EnvTickInterval = "POMO_TICK_INTERVAL"
	EnvSound        = "POMO_SOUND"
	EnvMute         = "POMO_MUTE"
	EnvBell         = "POMO_BELL"
	EnvLogLevel     = "POMO_LOG_LEVEL"
	EnvLogFile      = "POMO_LOG_FILE"
)

// Config holds every user-tunable setting.
type Config struct {
	LengthMinutes uint64        `yaml:"length_minutes"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	Sound         string        `yaml:"sound"` // WAV path; empty plays the built-in chime
	Mute          bool          `yaml:"mute"`
	Bell          bool          `yaml:"bell"`
	LogLevel      string        `yaml:"log_level"`
	LogFile       string        `yaml:"log_file"` // "stderr" logs to the console
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LengthMinutes: uint64(domain.DefaultLength / time.Minute),
		TickInterval:  100 * time.Millisecond,
		LogLevel:      logger.LevelNormal.String(),
		LogFile:       filepath.Join(".pomo-logs", "pomo.log"),
	}
}

// DefaultPath returns <user config dir>/ottopomo/config.yaml, falling back
// to the working directory when no config dir is available.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "ottopomo", "config.yaml")
	}
	return "ottopomo.yaml"
}

// Load builds a config from defaults, the YAML file at path, and the
// process environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Length is the configured countdown length.
func (c Config) Length() time.Duration {
	return time.Duration(c.LengthMinutes) * time.Minute
}

// Level is the parsed log level. Call Validate first.
func (c Config) Level() logger.Level {
	lvl, _ := logger.ParseLevel(c.LogLevel)
	return lvl
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.LengthMinutes > domain.MaxLengthMinutes {
		return fmt.Errorf("length_minutes %d exceeds %d", c.LengthMinutes, domain.MaxLengthMinutes)
	}
	if c.TickInterval < MinTickInterval || c.TickInterval > MaxTickInterval {
		return fmt.Errorf("tick_interval %s outside [%s, %s]", c.TickInterval, MinTickInterval, MaxTickInterval)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config yaml %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLength); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLength, err)
		}
		c.LengthMinutes = n
	}
	if v, ok := lookup(EnvTickInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		c.TickInterval = d
	}
	if v, ok := lookup(EnvSound); ok && v != "" {
		c.Sound = v
	}
	if v, ok := lookup(EnvMute); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMute, err)
		}
		c.Mute = b
	}
	if v, ok := lookup(EnvBell); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBell, err)
		}
		c.Bell = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	return nil
}
