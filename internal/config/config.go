// Package config resolves runtime settings from flags, MEDCONNECT_*
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/tracker"
)

// Environment variable names.
const (
	EnvDB           = "MEDCONNECT_DB"
	EnvLogFile      = "MEDCONNECT_LOG_FILE"
	EnvLogLevel     = "MEDCONNECT_LOG_LEVEL"
	EnvBreakpoint   = "MEDCONNECT_BREAKPOINT"
	EnvPollInterval = "MEDCONNECT_POLL_INTERVAL"
)

// Config holds resolved runtime settings.
type Config struct {
	DBPath       string
	LogFile      string
	LogLevel     slog.Level
	Breakpoint   int           `validate:"gt=0"`
	PollInterval time.Duration `validate:"gt=0"`
}

// Default returns the built-in settings. Paths are left empty so callers
// fall back to the XDG locations.
func Default() Config {
	return Config{
		LogLevel:     slog.LevelInfo,
		Breakpoint:   router.DefaultBreakpoint,
		PollInterval: tracker.PollInterval,
	}
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. An empty path means ".env" in the working
// directory, which may be absent. An explicit path must exist.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

// FromEnv overlays MEDCONNECT_* variables on the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.DBPath = os.Getenv(EnvDB)
	cfg.LogFile = os.Getenv(EnvLogFile)

	if v := os.Getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v := os.Getenv(EnvBreakpoint); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvBreakpoint, err)
		}
		cfg.Breakpoint = n
	}
	if v := os.Getenv(EnvPollInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvPollInterval, err)
		}
		cfg.PollInterval = d
	}
	return cfg, nil
}

var validate = validator.New()

// Validate rejects non-positive breakpoints and poll intervals.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s must be > 0", verrs[0].Field())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ResolveDBPath returns the first non-empty of flag and the configured path.
// An empty result means "use the store default".
func (c Config) ResolveDBPath(flag string) string {
	if flag != "" {
		return flag
	}
	return c.DBPath
}
