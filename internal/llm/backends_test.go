package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonHandler(status int, body any, header map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		for k, v := range header {
			w.Header().Set(k, v)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
}

func testServer(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server.URL
}

var tipSchema = &Schema{
	Name: "test-tip",
	Definition: map[string]any{
		"type":       "object",
		"properties": map[string]any{"tip": map[string]any{"type": "string"}},
		"required":   []any{"tip"},
	},
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicErrorBody(kind string) map[string]any {
	return map[string]any{
		"type":  "error",
		"error": map[string]any{"type": kind, "message": kind},
	}
}

func newAnthropic(t *testing.T, h http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	p, err := NewAnthropicProvider(BackendConfig{APIKey: "test-key", Model: "claude-haiku", BaseURL: testServer(t, h)})
	require.NoError(t, err)
	return p
}

var oneMessage = []Message{{Role: RoleUser, Content: "Explain the plagal cadence."}}

func TestAnthropicProvider(t *testing.T) {
	t.Run("structured reply", func(t *testing.T) {
		p := newAnthropic(t, jsonHandler(http.StatusOK, anthropicMessage(`{"tip":"IV to I"}`, "end_turn"), nil))
		resp, err := p.Generate(context.Background(), Request{System: "You teach theory.", Messages: oneMessage, Schema: tipSchema, MaxTokens: 256})
		require.NoError(t, err)
		assert.JSONEq(t, `{"tip":"IV to I"}`, string(resp.Content))
		assert.Equal(t, 80, resp.Usage.TotalTokens)
		assert.Equal(t, StopEnd, resp.StopReason)
		assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())
		assert.Equal(t, BackendAnthropic, p.Name())
	})

	t.Run("truncated", func(t *testing.T) {
		p := newAnthropic(t, jsonHandler(http.StatusOK, anthropicMessage(`{"tip":"IV`, "max_tokens"), nil))
		_, err := p.Generate(context.Background(), Request{Messages: oneMessage, Schema: tipSchema, MaxTokens: 4})
		var maxTok *ErrMaxTokensExceeded
		assert.True(t, errors.As(err, &maxTok), "got %T (%v)", err, err)
	})

	t.Run("rate limit", func(t *testing.T) {
		p := newAnthropic(t, jsonHandler(http.StatusTooManyRequests, anthropicErrorBody("rate_limit_error"), map[string]string{"Retry-After": "7"}))
		_, err := p.Generate(context.Background(), Request{Messages: oneMessage, MaxTokens: 100})
		var rl *ErrRateLimit
		require.True(t, errors.As(err, &rl), "got %T (%v)", err, err)
		assert.Equal(t, 7*time.Second, rl.RetryAfter)
	})

	t.Run("server error", func(t *testing.T) {
		p := newAnthropic(t, jsonHandler(http.StatusInternalServerError, anthropicErrorBody("api_error"), nil))
		_, err := p.Generate(context.Background(), Request{Messages: oneMessage, MaxTokens: 100})
		var unavail *ErrProviderUnavailable
		assert.True(t, errors.As(err, &unavail), "got %T (%v)", err, err)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewAnthropicProvider(BackendConfig{Model: "claude-haiku"})
		assert.Error(t, err)
	})
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider(t *testing.T) {
	newOpenAI := func(t *testing.T, h http.HandlerFunc) *OpenAIProvider {
		p, err := NewOpenAIProvider(BackendConfig{APIKey: "test-key", Model: "gpt-mini", BaseURL: testServer(t, h) + "/v1"})
		require.NoError(t, err)
		return p
	}

	t.Run("structured reply", func(t *testing.T) {
		var sent map[string]any
		h := func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&sent)
			jsonHandler(http.StatusOK, chatCompletion(`{"tip":"IV to I"}`, "stop"), nil)(w, r)
		}
		p := newOpenAI(t, h)
		resp, err := p.Generate(context.Background(), Request{System: "You teach theory.", Messages: oneMessage, Schema: tipSchema, MaxTokens: 256})
		require.NoError(t, err)
		assert.JSONEq(t, `{"tip":"IV to I"}`, string(resp.Content))
		assert.Equal(t, 40, resp.Usage.InputTokens)
		assert.Equal(t, 25, resp.Usage.OutputTokens)
		assert.Equal(t, "gpt-4o-mini", sent["model"])
		msgs, _ := sent["messages"].([]any)
		assert.Len(t, msgs, 2, "system prompt travels as the first message")
	})

	t.Run("plain text", func(t *testing.T) {
		p := newOpenAI(t, jsonHandler(http.StatusOK, chatCompletion("IV to I.", "length"), nil))
		resp, err := p.Generate(context.Background(), Request{Messages: oneMessage, MaxTokens: 3})
		require.NoError(t, err)
		assert.Equal(t, "IV to I.", resp.Text())
		assert.Equal(t, StopMaxTokens, resp.StopReason)
	})

	t.Run("rate limit", func(t *testing.T) {
		p := newOpenAI(t, jsonHandler(http.StatusTooManyRequests, map[string]any{
			"error": map[string]any{"type": "tokens", "message": "slow down", "code": "rate_limit_exceeded"},
		}, nil))
		_, err := p.Generate(context.Background(), Request{Messages: oneMessage, MaxTokens: 100})
		var rl *ErrRateLimit
		assert.True(t, errors.As(err, &rl), "got %T (%v)", err, err)
	})

	t.Run("server error", func(t *testing.T) {
		p := newOpenAI(t, jsonHandler(http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"type": "server_error", "message": "boom"},
		}, nil))
		_, err := p.Generate(context.Background(), Request{Messages: oneMessage, MaxTokens: 100})
		var unavail *ErrProviderUnavailable
		assert.True(t, errors.As(err, &unavail), "got %T (%v)", err, err)
	})

	t.Run("no choices", func(t *testing.T) {
		body := chatCompletion("", "stop")
		body["choices"] = []any{}
		p := newOpenAI(t, jsonHandler(http.StatusOK, body, nil))
		_, err := p.Generate(context.Background(), Request{Messages: oneMessage})
		var inv *ErrInvalidResponse
		assert.True(t, errors.As(err, &inv), "got %T (%v)", err, err)
	})
}

func TestOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(BackendConfig{Model: "anthropic/claude-3.5-haiku"})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(BackendConfig{APIKey: "sk-or", Model: "anthropic/claude-3.5-haiku"})
	require.NoError(t, err)
	assert.Equal(t, BackendOpenRouter, p.Name())
	assert.Equal(t, "anthropic/claude-3.5-haiku", p.ModelID())

	url := testServer(t, jsonHandler(http.StatusOK, chatCompletion(`{"tip":"V to I"}`, "stop"), nil))
	p, err = NewOpenRouterProvider(BackendConfig{APIKey: "sk-or", Model: "google/gemini-2.0-flash-001", BaseURL: url})
	require.NoError(t, err)
	resp, err := p.Generate(context.Background(), Request{Messages: oneMessage, Schema: tipSchema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tip":"V to I"}`, string(resp.Content))
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconception_id": map[string]any{"type": []any{"string", "null"}},
			"confidence":       map[string]any{"type": "number"},
			"format":           map[string]any{"type": "string", "enum": []string{"text", "staff"}},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"misconception_id", "confidence"},
	})

	assert.Equal(t, "OBJECT", string(s.Type))
	require.Len(t, s.Properties, 4)
	assert.Equal(t, "STRING", string(s.Properties["misconception_id"].Type))
	assert.Equal(t, "NUMBER", string(s.Properties["confidence"].Type))
	assert.Equal(t, []string{"text", "staff"}, s.Properties["format"].Enum)
	assert.Equal(t, "INTEGER", string(s.Properties["steps"].Items.Type))
	assert.ElementsMatch(t, []string{"misconception_id", "confidence"}, s.Required)
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, ErrDisabled)

	cfg := DefaultConfig()
	cfg.Provider = BackendAnthropic
	_, err = NewProvider(context.Background(), cfg, nil, nil)
	assert.Error(t, err)

	cfg.Anthropic.APIKey = "sk"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, BackendAnthropic, p.Name())
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())
}
