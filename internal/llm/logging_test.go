package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stave/internal/store"
)

type recordingRepo struct {
	store.LLMRequestRepo
	records []store.LLMRequest
	err     error
}

func (r *recordingRepo) Append(_ context.Context, req *store.LLMRequest) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, *req)
	return nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"tip":"count the half steps"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, repo, nil)

	ctx := WithPurpose(context.Background(), "error-diagnosis")
	_, err := p.Generate(ctx, Request{
		System:   "You are a music theory tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Why is C to E a major third?"}},
		Schema:   &Schema{Name: "tip", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	rec := repo.records[0]
	assert.Equal(t, "mock", rec.Provider)
	assert.Equal(t, "mock", rec.Model)
	assert.Equal(t, "error-diagnosis", rec.Purpose)
	assert.True(t, rec.Success)
	assert.Equal(t, 12, rec.InputTokens)
	assert.Equal(t, 7, rec.OutputTokens)
	assert.Contains(t, rec.RequestBody, "[system]\nYou are a music theory tutor.")
	assert.Contains(t, rec.RequestBody, "[user]\nWhy is C to E a major third?")
	assert.Contains(t, rec.RequestBody, "[schema: tip]")
	assert.JSONEq(t, `{"tip":"count the half steps"}`, rec.ResponseBody)
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	p := WithLogging(NewMockProvider(MockResponse{Err: &ErrRateLimit{}}), repo, nil)

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	require.True(t, errors.As(err, &rl))

	require.Len(t, repo.records, 1)
	assert.False(t, repo.records[0].Success)
	assert.Equal(t, "unknown", repo.records[0].Purpose)
	assert.NotEmpty(t, repo.records[0].ErrorMessage)
	assert.Empty(t, repo.records[0].ResponseBody)
}

func TestLoggingProvider_RepoFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)}), repo, logger)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text())
	assert.Contains(t, buf.String(), "llm request")
	assert.Contains(t, buf.String(), "failed to record LLM request")
	assert.Contains(t, buf.String(), "disk full")
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)}), nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())
}

func TestLoggingProvider_WithStore(t *testing.T) {
	s, err := store.Open("file:llm_logging_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer s.Close()

	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)}), s.LLMRequests(), nil)
	_, err = p.Generate(WithPurpose(context.Background(), "lesson"), Request{})
	require.NoError(t, err)

	recs, err := s.LLMRequests().List(context.Background(), store.LLMRequestFilter{Purpose: "lesson"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "mock", recs[0].Provider)
}
