package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottopomo/internal/logger"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLength, EnvTickInterval, EnvSound, EnvMute, EnvBell, EnvLogLevel, EnvLogFile} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2*time.Minute, cfg.Length())
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, logger.LevelNormal, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
length_minutes: 25
tick_interval: 250ms
sound: /tmp/ring.wav
bell: true
log_level: verbose
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, cfg.Length())
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "/tmp/ring.wav", cfg.Sound)
	assert.True(t, cfg.Bell)
	assert.False(t, cfg.Mute)
	assert.Equal(t, logger.LevelVerbose, cfg.Level())
}

func TestLoadEmptyFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsBadFile(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "length: 5\n"},
		{"bad duration", "tick_interval: soon\n"},
		{"tick too fast", "tick_interval: 1ms\n"},
		{"tick too slow", "tick_interval: 5s\n"},
		{"bad level", "log_level: shouty\n"},
		{"negative length", "length_minutes: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "length_minutes: 25\nmute: false\n")

	t.Setenv(EnvLength, "50")
	t.Setenv(EnvMute, "true")
	t.Setenv(EnvTickInterval, "20ms")
	t.Setenv(EnvLogFile, "stderr")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, cfg.Length())
	assert.True(t, cfg.Mute)
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "stderr", cfg.LogFile)
}

func TestEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{EnvLength, EnvTickInterval, EnvMute, EnvBell} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, "garbage")

			_, err := Load("")
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("pomo", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--minutes", "5", "-v", "--bell"}))

	cfg := Default()
	cfg.Sound = "from-file.wav"
	cfg.TickInterval = 200 * time.Millisecond

	require.NoError(t, cfg.ApplyFlags(fs))
	assert.Equal(t, 5*time.Minute, cfg.Length())
	assert.True(t, cfg.Bell)
	assert.Equal(t, logger.LevelVerbose, cfg.Level())
	// Untouched flags keep lower-precedence values.
	assert.Equal(t, "from-file.wav", cfg.Sound)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval)
}

func TestApplyFlagsQuietWins(t *testing.T) {
	fs := pflag.NewFlagSet("pomo", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-v", "--quiet"}))

	cfg := Default()
	require.NoError(t, cfg.ApplyFlags(fs))
	assert.Equal(t, logger.LevelOff, cfg.Level())
}

func TestApplyFlagsValidates(t *testing.T) {
	fs := pflag.NewFlagSet("pomo", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--tick", "1h"}))

	cfg := Default()
	assert.Error(t, cfg.ApplyFlags(fs))
}

func TestConfigPath(t *testing.T) {
	fs := pflag.NewFlagSet("pomo", pflag.ContinueOnError)
	RegisterFlags(fs)
	assert.Equal(t, DefaultPath(), ConfigPath(fs))

	require.NoError(t, fs.Parse([]string{"--config", "/etc/pomo.yaml"}))
	assert.Equal(t, "/etc/pomo.yaml", ConfigPath(fs))
}
