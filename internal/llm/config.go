package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Backend names accepted in Config.Provider.
const (
	BackendAnthropic  = "anthropic"
	BackendOpenAI     = "openai"
	BackendGemini     = "gemini"
	BackendOpenRouter = "openrouter"
	BackendMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend. Empty means the tutor is off.
	Provider string

	Anthropic  BackendConfig
	OpenAI     BackendConfig
	Gemini     BackendConfig
	OpenRouter BackendConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// BackendConfig is the per-backend connection setting.
type BackendConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint. Used by openai-compatible
	// gateways and by tests.
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with every backend on its small model and
// no provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  BackendConfig{Model: "claude-haiku"},
		OpenAI:     BackendConfig{Model: "gpt-4o-mini"},
		Gemini:     BackendConfig{Model: "gemini-flash"},
		OpenRouter: BackendConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// Enabled reports whether a provider has been selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// Backend returns the settings of the named backend, or nil for mock and
// unknown names.
func (c *Config) Backend(name string) *BackendConfig {
	switch name {
	case BackendAnthropic:
		return &c.Anthropic
	case BackendOpenAI:
		return &c.OpenAI
	case BackendGemini:
		return &c.Gemini
	case BackendOpenRouter:
		return &c.OpenRouter
	}
	return nil
}

var backendNames = []string{BackendAnthropic, BackendOpenAI, BackendGemini, BackendOpenRouter}

// ConfigFromEnv builds a Config from STAVE_* environment variables on top
// of the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg, os.Getenv)
	return cfg
}

// ApplyEnv overlays environment settings onto cfg. Per-backend variables
// (STAVE_OPENAI_MODEL) are read first; STAVE_LLM_MODEL and STAVE_LLM_API_KEY
// then apply to whichever backend STAVE_LLM_PROVIDER selected.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if p := getenv("STAVE_LLM_PROVIDER"); p != "" {
		cfg.Provider = strings.ToLower(p)
	}

	for _, name := range backendNames {
		b := cfg.Backend(name)
		prefix := "STAVE_" + strings.ToUpper(name) + "_"
		if k := getenv(prefix + "API_KEY"); k != "" {
			b.APIKey = k
		}
		if m := getenv(prefix + "MODEL"); m != "" {
			b.Model = m
		}
		if u := getenv(prefix + "BASE_URL"); u != "" {
			b.BaseURL = u
		}
	}

	if b := cfg.Backend(cfg.Provider); b != nil {
		if k := getenv("STAVE_LLM_API_KEY"); k != "" {
			b.APIKey = k
		}
		if m := getenv("STAVE_LLM_MODEL"); m != "" {
			b.Model = m
		}
	}

	if t := getenv("STAVE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
}

// vendorKeys are the standard API key variables, in discovery order.
var vendorKeys = []struct {
	env     string
	backend string
}{
	{"ANTHROPIC_API_KEY", BackendAnthropic},
	{"OPENAI_API_KEY", BackendOpenAI},
	{"GEMINI_API_KEY", BackendGemini},
	{"OPENROUTER_API_KEY", BackendOpenRouter},
}

// DiscoverConfig probes the vendors' own API key variables and selects the
// first backend whose key is set. Returns (Config{}, false) if none is.
func DiscoverConfig() (Config, bool) {
	return discoverConfig(os.Getenv)
}

func discoverConfig(getenv func(string) string) (Config, bool) {
	cfg := DefaultConfig()
	if !Discover(&cfg, getenv) {
		return Config{}, false
	}
	return cfg, true
}

// Discover selects the first backend whose vendor API key is set and copies
// the key into cfg. It reports whether a key was found.
func Discover(cfg *Config, getenv func(string) string) bool {
	for _, v := range vendorKeys {
		if k := getenv(v.env); k != "" {
			cfg.Provider = v.backend
			cfg.Backend(v.backend).APIKey = k
			return true
		}
	}
	return false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "", BackendMock:
		return nil
	}
	b := c.Backend(c.Provider)
	if b == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if b.APIKey == "" {
		return fmt.Errorf("STAVE_%s_API_KEY (or STAVE_LLM_API_KEY) is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	if b.Model == "" {
		return fmt.Errorf("no model configured for the %s provider", c.Provider)
	}
	return nil
}
