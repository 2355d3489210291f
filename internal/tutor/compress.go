package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
)

// Compressor condenses a kind's error history into a short summary.
type Compressor struct {
	provider llm.Provider
	cfg      CompressorConfig
}

// NewCompressor creates a context compressor.
func NewCompressor(provider llm.Provider, cfg CompressorConfig) *Compressor {
	return &Compressor{provider: provider, cfg: cfg}
}

// CompressErrors compresses a kind's error history into a summary.
// Runs asynchronously. The callback receives the compressed summary.
func (c *Compressor) CompressErrors(
	ctx context.Context,
	kind quiz.Kind,
	errors []string,
	cb func(kind quiz.Kind, summary string),
) {
	go func() {
		summary, err := c.compress(ctx, kind, errors)
		if err != nil || cb == nil {
			return
		}
		cb(kind, summary)
	}()
}

type compressionOutput struct {
	Summary string `json:"summary"`
}

func (c *Compressor) compress(ctx context.Context, kind quiz.Kind, errors []string) (string, error) {
	ctx = llm.WithPurpose(ctx, "session-compress")

	topic, _ := catalog.GetTopic(kind)
	req := llm.Request{
		System: compressionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCompressionUserMessage(topic, errors)},
		},
		Schema:      SessionCompressionSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("session compression: %w", err)
	}

	var out compressionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse compression response: %w", err)
	}

	return out.Summary, nil
}
