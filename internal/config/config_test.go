package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDB, EnvLogFile, EnvLogLevel, EnvBreakpoint, EnvPollInterval} {
		t.Setenv(k, "")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Breakpoint)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDB, "/tmp/mc.db")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvBreakpoint, "120")
	t.Setenv(EnvPollInterval, "2s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mc.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 120, cfg.Breakpoint)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
}

func TestFromEnvRejectsGarbage(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{EnvBreakpoint, "wide"},
		{EnvPollInterval, "soon"},
		{EnvLogLevel, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	cfg := Default()
	cfg.Breakpoint = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Breakpoint")

	cfg = Default()
	cfg.PollInterval = -time.Second
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PollInterval")
}

func TestResolveDBPathPrecedence(t *testing.T) {
	cfg := Config{DBPath: "/env.db"}
	assert.Equal(t, "/flag.db", cfg.ResolveDBPath("/flag.db"))
	assert.Equal(t, "/env.db", cfg.ResolveDBPath(""))
	assert.Equal(t, "", Config{}.ResolveDBPath(""))
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is set, even to "".
	os.Unsetenv(EnvBreakpoint)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MEDCONNECT_BREAKPOINT=140\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 140, cfg.Breakpoint)

	require.Error(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}

func TestLoadEnvFileDefaultMayBeAbsent(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, LoadEnvFile(""))
}
