package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/stave/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// request log and at debug level through slog.
type LoggingProvider struct {
	inner Provider
	repo  store.LLMRequestRepo
	log   *slog.Logger
}

// WithLogging wraps a Provider with request logging. repo may be nil, in
// which case requests only reach slog.
func WithLogging(p Provider, repo store.LLMRequestRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, repo: repo, log: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	rec := store.LLMRequest{
		Provider:    l.inner.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.ResponseBody = string(resp.Content)
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	l.log.Debug("llm request",
		"provider", rec.Provider,
		"model", rec.Model,
		"purpose", rec.Purpose,
		"latency", latency,
		"input_tokens", rec.InputTokens,
		"output_tokens", rec.OutputTokens,
		"ok", rec.Success,
	)

	if l.repo != nil {
		// The request already happened; a log failure must not fail it.
		if logErr := l.repo.Append(context.WithoutCancel(ctx), &rec); logErr != nil {
			l.log.Warn("failed to record LLM request", "error", logErr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) Name() string { return l.inner.Name() }

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// renderRequest builds the readable transcript stored with each request.
func renderRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
