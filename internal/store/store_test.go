package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stave/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"},
		{"busy_timeout", "5000"},
	}
	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	assert.True(t, strings.HasPrefix(withPragmas("stave.db"), "stave.db?_pragma="))
	assert.Contains(t, withPragmas("file:x?mode=memory"), "mode=memory&_pragma=journal_mode(WAL)")
}

func TestReopenKeepsSchema(t *testing.T) {
	dsn := t.TempDir() + "/bank.db"
	s, err := Open(dsn)
	require.NoError(t, err)
	reg := quiz.NewRegistry()
	q, err := reg.Generate("pitch.naming", 7)
	require.NoError(t, err)
	require.NoError(t, s.Questions().Save(context.Background(), q))
	require.NoError(t, s.Close())

	s, err = Open(dsn)
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.Questions().Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.Prompt, rec.Question.Prompt)
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{quiz.EngineVersion, true},
		{"v1.0.9", true},
		{"v1.1.0", false},
		{"v2.0.0", false},
		{"1.0.0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Compatible(tt.version); got != tt.want {
			t.Errorf("Compatible(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestQuestionBank(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()
	reg := quiz.NewRegistry()

	var saved []*quiz.Question
	for i, k := range []quiz.Kind{"intervals.naming", "intervals.naming", "rhythm.beaming"} {
		q, err := reg.Generate(k, uint64(100+i))
		require.NoError(t, err)
		q.CreatedAt = time.UnixMilli(int64(1_700_000_000_000 + i*1000))
		require.NoError(t, repo.Save(ctx, q))
		saved = append(saved, q)
	}

	t.Run("save is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, saved[0]))
		all, err := repo.List(ctx, QuestionFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("get round trips the payload", func(t *testing.T) {
		rec, err := repo.Get(ctx, saved[2].ID)
		require.NoError(t, err)
		assert.Equal(t, saved[2].Kind, rec.Kind)
		assert.Equal(t, saved[2].Seed, rec.Seed)
		assert.Equal(t, quiz.EngineVersion, rec.EngineVersion)
		assert.True(t, rec.Replayable())
		assert.Equal(t, saved[2].Parts, rec.Question.Parts)
		assert.Equal(t, saved[2].Staff, rec.Question.Staff)
		assert.Equal(t, saved[2].Explanation, rec.Question.Explanation)
		assert.True(t, saved[2].CreatedAt.Equal(rec.CreatedAt))
	})

	t.Run("large seeds survive the signed column", func(t *testing.T) {
		q, err := reg.Generate("terms.definition", ^uint64(0)-5)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, q))
		rec, err := repo.Get(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, ^uint64(0)-5, rec.Seed)
		require.NoError(t, repo.Delete(ctx, q.ID))
	})

	t.Run("list filters and orders newest first", func(t *testing.T) {
		recs, err := repo.List(ctx, QuestionFilter{Kind: "intervals.naming"})
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, saved[1].ID, recs[0].ID)
		assert.Equal(t, saved[0].ID, recs[1].ID)

		recs, err = repo.List(ctx, QuestionFilter{Section: quiz.SectionRhythm})
		require.NoError(t, err)
		require.Len(t, recs, 1)

		recs, err = repo.List(ctx, QuestionFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, saved[1].ID, recs[0].ID)
	})

	t.Run("counts per kind", func(t *testing.T) {
		counts, err := repo.Counts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []KindCount{{"intervals.naming", 2}, {"rhythm.beaming", 1}}, counts)
	})

	t.Run("missing rows", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.True(t, errors.Is(repo.Delete(ctx, "nope"), ErrNotFound))
	})
}

func TestLLMRequestLog(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMRequests()
	ctx := context.Background()

	reqs := []*LLMRequest{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "lesson", InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"title":"x"}`},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "error-diagnosis", InputTokens: 80, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for _, r := range reqs {
		require.NoError(t, repo.Append(ctx, r))
		assert.NotZero(t, r.ID)
		assert.False(t, r.CreatedAt.IsZero())
	}

	all, err := repo.List(ctx, LLMRequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, reqs[2].ID, all[0].ID, "newest first")

	lessons, err := repo.List(ctx, LLMRequestFilter{Purpose: "lesson", Limit: 1})
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "openai", lessons[0].Provider)

	got, err := repo.Get(ctx, reqs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, reqs[0].RequestBody, got.RequestBody)
	assert.Equal(t, reqs[0].ResponseBody, got.ResponseBody)
	assert.True(t, got.Success)

	_, err = repo.Get(ctx, 9999)
	assert.True(t, errors.Is(err, ErrNotFound))

	usage, err := repo.Usage(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, ModelUsage{Model: "claude-haiku-4-5", Requests: 2, Failures: 1, InputTokens: 180, OutputTokens: 40}, usage[0])
	assert.Equal(t, ModelUsage{Model: "gpt-4o-mini", Requests: 1, Failures: 0, InputTokens: 10, OutputTokens: 5}, usage[1])
}
