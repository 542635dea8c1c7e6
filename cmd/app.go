package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/saketh8887/medconnect/internal/app"
	"github.com/saketh8887/medconnect/internal/assistant"
	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/llm"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	cat := catalog.Default()
	opts := app.Options{
		Store:        rt.store,
		Catalog:      cat,
		Log:          rt.log,
		Breakpoint:   rt.cfg.Breakpoint,
		PollInterval: rt.cfg.PollInterval,
	}

	llmCfg, err := llm.ResolveConfig()
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		rt.log.Info("assistant not configured")
	case err != nil:
		rt.log.Warn("assistant config", "error", err)
	default:
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, rt.store, rt.log)
		if err != nil {
			rt.log.Warn("assistant unavailable", "error", err)
			break
		}
		opts.Assistant = assistant.NewService(provider, cat, assistant.DefaultConfig())
	}

	return app.Run(opts)
}
