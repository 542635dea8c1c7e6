package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/config"
	"github.com/saketh8887/medconnect/internal/logging"
	"github.com/saketh8887/medconnect/internal/store"
)

// runtime is what every subcommand opens: settings, the log file and the
// seeded store.
type runtime struct {
	cfg    config.Config
	log    *slog.Logger
	store  *store.Store
	logOut io.Closer
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return cfg, cfg.Validate()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MEDCONNECT_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	flag, _ := cmd.Flags().GetString("db")
	if p := cfg.ResolveDBPath(flag); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, logOut, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		logOut.Close()
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logOut.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	n, err := st.Seed(cmd.Context(), catalog.InitialUsers())
	if err != nil {
		st.Close()
		logOut.Close()
		return nil, err
	}
	if n > 0 {
		log.Info("seeded accounts", "count", n, "db", dbPath)
	}
	return &runtime{cfg: cfg, log: log, store: st, logOut: logOut}, nil
}

func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.log.Warn("close store", "error", err)
	}
	r.logOut.Close()
}
