package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// load runs Load with an isolated config home and no dotenv file.
func load(t *testing.T, env map[string]string, opts Options) (*Settings, error) {
	t.Helper()
	dir := t.TempDir()
	if env == nil {
		env = map[string]string{}
	}
	if env["XDG_CONFIG_HOME"] == "" {
		env["XDG_CONFIG_HOME"] = dir
	}
	if env["STAVE_DB"] == "" {
		env["STAVE_DB"] = filepath.Join(dir, "stave.db")
	}
	opts.Getenv = envMap(env)
	if opts.EnvFile == "" {
		opts.EnvFile = filepath.Join(dir, "missing.env")
	}
	return Load(opts)
}

func TestLoad_Defaults(t *testing.T) {
	s, err := load(t, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, s.QuestionsPerKind)
	assert.Equal(t, 15*time.Minute, s.SessionDuration)
	assert.Zero(t, s.Seed)
	assert.Empty(t, s.Source)
	assert.Nil(t, s.Allowed())
	assert.False(t, s.LLM.Enabled())
	require.NoError(t, s.Validate())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stave.yaml", `
seed: 42
questions_per_kind: 5
session_minutes: 20
kinds: [rhythm, intervals.naming]
llm:
  provider: OpenAI
  model: gpt
  api_key: sk-file
  timeout: 30s
`)

	s, err := load(t, nil, Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, s.Source)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, 5, s.QuestionsPerKind)
	assert.Equal(t, 20*time.Minute, s.SessionDuration)
	assert.Contains(t, s.Kinds, quiz.Kind("rhythm.beaming"))
	assert.Contains(t, s.Kinds, quiz.Kind("intervals.naming"))
	assert.Equal(t, llm.BackendOpenAI, s.LLM.Provider)
	assert.Equal(t, "gpt", s.LLM.OpenAI.Model)
	assert.Equal(t, "sk-file", s.LLM.OpenAI.APIKey)
	assert.Equal(t, 30*time.Second, s.LLM.Timeout)
	require.NoError(t, s.Validate())
}

func TestLoad_DefaultPath(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "stave"), 0o755))
	path := writeFile(t, filepath.Join(home, "stave"), "config.yaml", "questions_per_kind: 7\n")

	s, err := load(t, map[string]string{"XDG_CONFIG_HOME": home}, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, s.Source)
	assert.Equal(t, 7, s.QuestionsPerKind)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := load(t, nil, Options{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadFile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "seed: [1, 2\n"},
		{"unknown kind", "kinds: [pitch.humming]\n"},
		{"bad timeout", "llm:\n  timeout: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "c.yaml", tt.body)
			_, err := load(t, nil, Options{Path: path})
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.yaml", "seed: 1\nquestions_per_kind: 2\n")

	s, err := load(t, map[string]string{
		"STAVE_SEED":               "99",
		"STAVE_QUESTIONS_PER_KIND": "4",
		"STAVE_KINDS":              "pitch.naming, terms",
		"STAVE_LLM_PROVIDER":       "anthropic",
		"STAVE_LLM_API_KEY":        "sk-env",
		"STAVE_DB":                 "/tmp/x.db",
	}, Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, uint64(99), s.Seed)
	assert.Equal(t, 4, s.QuestionsPerKind)
	assert.Equal(t, "/tmp/x.db", s.DB)
	assert.Equal(t, quiz.Kind("pitch.naming"), s.Kinds[0])
	assert.Contains(t, s.Kinds, quiz.Kind("terms.definition"))
	assert.Equal(t, "sk-env", s.LLM.Anthropic.APIKey)
	assert.True(t, s.Allowed()["pitch.naming"])
}

func TestLoad_BadEnv(t *testing.T) {
	for _, env := range []map[string]string{
		{"STAVE_SEED": "-1"},
		{"STAVE_QUESTIONS_PER_KIND": "many"},
		{"STAVE_KINDS": "rhythm,banjo"},
	} {
		_, err := load(t, env, Options{})
		assert.Error(t, err, "%v", env)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "STAVE_SEED=7\nSTAVE_QUESTIONS_PER_KIND=6\n")

	s, err := load(t, map[string]string{"STAVE_QUESTIONS_PER_KIND": "2"}, Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), s.Seed)
	assert.Equal(t, 2, s.QuestionsPerKind, "process environment wins over .env")
}

func TestLoad_DiscoversVendorKey(t *testing.T) {
	s, err := load(t, map[string]string{"GEMINI_API_KEY": "g-key"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, llm.BackendGemini, s.LLM.Provider)
	assert.Equal(t, "g-key", s.LLM.Gemini.APIKey)

	// An explicit provider is never replaced by discovery.
	s, err = load(t, map[string]string{
		"GEMINI_API_KEY":     "g-key",
		"STAVE_LLM_PROVIDER": "mock",
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, llm.BackendMock, s.LLM.Provider)
}

func TestValidate(t *testing.T) {
	s := Defaults()
	s.QuestionsPerKind = 0
	assert.Error(t, s.Validate())

	s = Defaults()
	s.LLM.Provider = llm.BackendOpenAI
	assert.Error(t, s.Validate(), "provider without key")
}

func TestResolveKinds(t *testing.T) {
	kinds, err := ResolveKinds([]string{"intervals.naming", " ", "intervals", "intervals.naming"})
	require.NoError(t, err)
	assert.Equal(t, quiz.Kind("intervals.naming"), kinds[0])

	seen := map[quiz.Kind]int{}
	for _, k := range kinds {
		seen[k]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, "%s listed twice", k)
	}

	_, err = ResolveKinds([]string{"nope"})
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &File{Seed: 3, Kinds: []string{"scales"}, LLM: LLMFile{Provider: "gemini"}}
	require.NoError(t, WriteFile(path, in))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
