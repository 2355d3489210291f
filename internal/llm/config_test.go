package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(*Config)
		wantErr bool
	}{
		{"disabled", func(c *Config) {}, false},
		{"mock needs no key", func(c *Config) { c.Provider = BackendMock }, false},
		{"anthropic without key", func(c *Config) { c.Provider = BackendAnthropic }, true},
		{"anthropic with key", func(c *Config) { c.Provider = BackendAnthropic; c.Anthropic.APIKey = "sk" }, false},
		{"openrouter with key", func(c *Config) { c.Provider = BackendOpenRouter; c.OpenRouter.APIKey = "sk" }, false},
		{"gemini without model", func(c *Config) { c.Provider = BackendGemini; c.Gemini = BackendConfig{APIKey: "k"} }, true},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.cfg(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	ApplyEnv(&cfg, envMap(map[string]string{
		"STAVE_LLM_PROVIDER":    "OpenAI",
		"STAVE_LLM_API_KEY":     "sk-generic",
		"STAVE_LLM_MODEL":       "gpt-4.1-mini",
		"STAVE_GEMINI_API_KEY":  "g-key",
		"STAVE_OPENAI_BASE_URL": "http://localhost:8080/v1",
		"STAVE_LLM_TIMEOUT":     "5s",
	}))

	assert.Equal(t, BackendOpenAI, cfg.Provider)
	assert.Equal(t, "sk-generic", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAI.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_GenericKeyNeedsProvider(t *testing.T) {
	cfg := DefaultConfig()
	ApplyEnv(&cfg, envMap(map[string]string{"STAVE_LLM_API_KEY": "sk"}))
	assert.False(t, cfg.Enabled())
	assert.Empty(t, cfg.Anthropic.APIKey)
}

func TestDiscoverConfig(t *testing.T) {
	_, ok := discoverConfig(envMap(nil))
	assert.False(t, ok)

	cfg, ok := discoverConfig(envMap(map[string]string{
		"GEMINI_API_KEY": "g",
		"OPENAI_API_KEY": "o",
	}))
	require.True(t, ok)
	assert.Equal(t, BackendOpenAI, cfg.Provider)
	assert.Equal(t, "o", cfg.OpenAI.APIKey)
	assert.Empty(t, cfg.Gemini.APIKey)

	cfg, ok = discoverConfig(envMap(map[string]string{"OPENROUTER_API_KEY": "r"}))
	require.True(t, ok)
	assert.Equal(t, BackendOpenRouter, cfg.Provider)
	assert.NoError(t, cfg.Validate())
}
