package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the back-end: anthropic, openai, openrouter,
	// gemini or mock.
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	OpenRouter ProviderConfig
	Gemini     ProviderConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call, retries included.
	Timeout time.Duration
}

// ProviderConfig is the per-back-end key, model and optional endpoint.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

func (c *Config) provider(name string) *ProviderConfig {
	switch name {
	case ProviderAnthropic:
		return &c.Anthropic
	case ProviderOpenAI:
		return &c.OpenAI
	case ProviderOpenRouter:
		return &c.OpenRouter
	case ProviderGemini:
		return &c.Gemini
	}
	return nil
}

// Selected returns the settings of the chosen provider (zero for mock).
func (c Config) Selected() ProviderConfig {
	if p := c.provider(c.Provider); p != nil {
		return *p
	}
	return ProviderConfig{}
}

// ConfigFromEnv builds a Config from MEDCONNECT_* variables, falling back
// to defaults for unset values. For each provider it reads
// MEDCONNECT_<NAME>_API_KEY, _MODEL and _BASE_URL.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if p := os.Getenv("MEDCONNECT_LLM_PROVIDER"); p != "" {
		cfg.Provider = strings.ToLower(p)
	}
	for _, name := range []string{ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter, ProviderGemini} {
		pc := cfg.provider(name)
		prefix := "MEDCONNECT_" + strings.ToUpper(name) + "_"
		if v := os.Getenv(prefix + "API_KEY"); v != "" {
			pc.APIKey = v
		}
		if v := os.Getenv(prefix + "MODEL"); v != "" {
			pc.Model = v
		}
		if v := os.Getenv(prefix + "BASE_URL"); v != "" {
			pc.BaseURL = v
		}
	}
	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Anthropic, OpenAI, Gemini, OpenRouter) and returns a Config for the
// first provider whose key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, d := range []struct{ provider, env string }{
		{ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderGemini, "GEMINI_API_KEY"},
		{ProviderOpenRouter, "OPENROUTER_API_KEY"},
	} {
		if k := os.Getenv(d.env); k != "" {
			cfg.Provider = d.provider
			cfg.provider(d.provider).APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig prefers an explicit MEDCONNECT_LLM_PROVIDER and falls back
// to discovery. It returns ErrNotConfigured when neither yields a provider.
func ResolveConfig() (Config, error) {
	if os.Getenv("MEDCONNECT_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		return cfg, cfg.Validate()
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg, nil
	}
	return Config{}, ErrNotConfigured
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	p := c.provider(c.Provider)
	if p == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if p.APIKey == "" {
		return fmt.Errorf("MEDCONNECT_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
