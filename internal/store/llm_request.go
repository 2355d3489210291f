package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// LLMRequest is one logged LLM API call.
type LLMRequest struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestFilter narrows a log listing.
type LLMRequestFilter struct {
	Purpose string
	// Limit caps the result; 0 means no limit.
	Limit int
}

// ModelUsage aggregates the log per model.
type ModelUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMRequestRepo is the LLM request log.
type LLMRequestRepo interface {
	// Append records req and sets its ID. A zero CreatedAt is set to now.
	Append(ctx context.Context, req *LLMRequest) error

	// List returns requests newest first.
	List(ctx context.Context, f LLMRequestFilter) ([]LLMRequest, error)

	// Get returns the request with id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*LLMRequest, error)

	// Usage returns token totals per model, busiest first.
	Usage(ctx context.Context) ([]ModelUsage, error)
}

type llmRequestRepo struct {
	db *sql.DB
}

var llmRequestSelect = []string{
	"id", "created_at", "provider", "model", "purpose", "input_tokens", "output_tokens",
	"latency_ms", "success", "error_message", "request_body", "response_body",
}

func (r *llmRequestRepo) Append(ctx context.Context, req *LLMRequest) error {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(llmRequestsTable.Name).
		Columns(llmRequestSelect[1:]...).
		Values(req.CreatedAt.UnixMilli(), req.Provider, req.Model, req.Purpose, req.InputTokens,
			req.OutputTokens, req.LatencyMs, req.Success, req.ErrorMessage, req.RequestBody, req.ResponseBody).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save LLM request: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		req.ID = id
	}
	return nil
}

func (r *llmRequestRepo) List(ctx context.Context, f LLMRequestFilter) ([]LLMRequest, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(llmRequestSelect...).
		From(b.Table(llmRequestsTable.Name)).
		OrderBy(entsql.Desc("id"))
	if f.Purpose != "" {
		sel.Where(entsql.EQ("purpose", f.Purpose))
	}
	if f.Limit > 0 {
		sel.Limit(f.Limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list LLM requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequest
	for rows.Next() {
		req, err := scanLLMRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (r *llmRequestRepo) Get(ctx context.Context, id int64) (*LLMRequest, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(llmRequestSelect...).
		From(b.Table(llmRequestsTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	req, err := scanLLMRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("LLM request %d: %w", id, ErrNotFound)
	}
	return req, err
}

func (r *llmRequestRepo) Usage(ctx context.Context) ([]ModelUsage, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(
		"model",
		entsql.Count("*"),
		"SUM(CASE WHEN success THEN 0 ELSE 1 END)",
		entsql.Sum("input_tokens"),
		entsql.Sum("output_tokens"),
	).
		From(b.Table(llmRequestsTable.Name)).
		GroupBy("model").
		OrderBy("model").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Requests, &u.Failures, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Requests > out[j].Requests })
	return out, nil
}

func scanLLMRequest(row rowScanner) (*LLMRequest, error) {
	var req LLMRequest
	var createdAtMs int64
	err := row.Scan(&req.ID, &createdAtMs, &req.Provider, &req.Model, &req.Purpose, &req.InputTokens,
		&req.OutputTokens, &req.LatencyMs, &req.Success, &req.ErrorMessage, &req.RequestBody, &req.ResponseBody)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan LLM request: %w", err)
	}
	req.CreatedAt = time.UnixMilli(createdAtMs)
	return &req, nil
}
