package cmd

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/config"
	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

// answerKey replays the generator stream preview uses and returns the
// correct answers, one line per part.
func answerKey(t *testing.T, reg *quiz.Registry, kinds []quiz.Kind, count int, seed uint64) string {
	t.Helper()
	rng := dice.New(seed)
	var b strings.Builder
	for range count {
		q, err := reg.Generate(dice.Pick(rng, kinds), rng.Uint64())
		require.NoError(t, err)
		for _, p := range q.Parts {
			b.WriteString(p.Answer + "\n")
		}
	}
	return b.String()
}

func TestPreview_AllCorrect(t *testing.T) {
	reg := quiz.NewRegistry()
	kinds := []quiz.Kind{"intervals.naming", "pitch.enharmonic"}
	in := strings.NewReader(answerKey(t, reg, kinds, 4, 99))

	var out bytes.Buffer
	correct, err := preview(reg, kinds, 4, 99, in, &out)
	require.NoError(t, err)
	assert.Equal(t, 4, correct)
	assert.Contains(t, out.String(), "Score: 4/4")
}

func TestPreview_NumericChoicesByPosition(t *testing.T) {
	reg := quiz.NewRegistry()
	kinds := []quiz.Kind{"context.mediant-count", "context.interval-count", "context.structure"}

	rng := dice.New(7)
	var in strings.Builder
	for range 4 {
		q, err := reg.Generate(dice.Pick(rng, kinds), rng.Uint64())
		require.NoError(t, err)
		for _, p := range q.Parts {
			pos := slices.IndexFunc(p.Choices, func(c quiz.Choice) bool { return c.Text == p.Answer })
			require.GreaterOrEqual(t, pos, 0, "answer missing from choices")
			in.WriteString(strconv.Itoa(pos+1) + "\n")
		}
	}

	var out bytes.Buffer
	correct, err := preview(reg, kinds, 4, 7, strings.NewReader(in.String()), &out)
	require.NoError(t, err)
	assert.Equal(t, 4, correct)
}

func TestPreview_InputClosed(t *testing.T) {
	var out bytes.Buffer
	correct, err := preview(quiz.NewRegistry(), nil, 3, 1, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Zero(t, correct)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestPrintKinds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printKinds(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(catalog.AllTopics())+1)
	assert.True(t, strings.HasPrefix(lines[0], "KIND"))
}

func TestResolveKindFlag(t *testing.T) {
	kinds, err := resolveKindFlag("intervals.naming, pitch.enharmonic")
	require.NoError(t, err)
	assert.Equal(t, []quiz.Kind{"intervals.naming", "pitch.enharmonic"}, kinds)

	_, err = resolveKindFlag("nope.nothing")
	assert.Error(t, err)
}

func TestGenerateIntoAndExport(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	ids, err := generateInto(ctx, quiz.NewRegistry(), st.Questions(), []quiz.Kind{"intervals.naming"}, 3, 5)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	recs, err := st.Questions().List(ctx, store.QuestionFilter{Kind: "intervals.naming"})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	var list bytes.Buffer
	require.NoError(t, printRecords(&list, recs, time.Now()))
	for _, id := range ids {
		assert.Contains(t, list.String(), id)
	}

	data, err := exportYAML(recs)
	require.NoError(t, err)

	var back []exportQuestion
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Len(t, back, 3)
	for _, q := range back {
		assert.Equal(t, "intervals.naming", q.Kind)
		assert.Equal(t, quiz.EngineVersion, q.Engine)
		assert.NotEmpty(t, q.Parts)
	}
}

func TestGenerateInto_SameSeedSameQuestions(t *testing.T) {
	reg := quiz.NewRegistry()
	a, err := generateInto(context.Background(), reg, openTestStore(t).Questions(), nil, 4, 11)
	require.NoError(t, err)

	b, err := generateInto(context.Background(), reg, &discardBank{}, nil, 4, 11)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

type discardBank struct{ store.QuestionRepo }

func (discardBank) Save(context.Context, *quiz.Question) error { return nil }

func TestPrintUsage(t *testing.T) {
	var out bytes.Buffer
	err := printUsage(&out, []store.ModelUsage{
		{Model: "some-unknown-model", Requests: 2, Failures: 1, InputTokens: 1200, OutputTokens: 300},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1,200")
	assert.Contains(t, out.String(), "TOTAL (partial)")
	assert.Contains(t, out.String(), "Pricing unavailable for: some-unknown-model")
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		usd  float64
		want string
	}{
		{0.001, "$0.0010"},
		{1.5, "$1.50"},
	}
	for _, tt := range tests {
		if got := formatCost(tt.usd); got != tt.want {
			t.Errorf("formatCost(%v) = %q, want %q", tt.usd, got, tt.want)
		}
	}
}

func TestDefaultFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/stave/config.yaml"
	require.NoError(t, config.WriteFile(path, defaultFile()))

	s, err := config.Load(config.Options{Path: path, EnvFile: t.TempDir() + "/none.env", Getenv: func(string) string { return "" }})
	require.NoError(t, err)
	d := config.Defaults()
	assert.Equal(t, d.QuestionsPerKind, s.QuestionsPerKind)
	assert.Equal(t, d.SessionDuration, s.SessionDuration)
	assert.Equal(t, path, s.Source)

	var out bytes.Buffer
	printSettings(&out, s)
	assert.Contains(t, out.String(), "Tutor:       off")
	assert.Contains(t, out.String(), "Kinds:       all")
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out, "v0.3.1")
	got := out.String()
	assert.Contains(t, got, "stave    v0.3.1")
	assert.Contains(t, got, "engine   "+quiz.EngineVersion+" (replays v1.0.x banks)")
	assert.Contains(t, got, fmt.Sprintf("kinds    %d", len(quiz.NewRegistry().Kinds())))
}
