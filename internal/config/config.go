// Package config resolves stave's settings. Layers apply in order, each
// overriding the last: built-in defaults, the YAML config file, a .env file
// in the working directory, the process environment, and finally command
// line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/store"
)

const (
	appDir     = "stave"
	configFile = "config.yaml"
)

// File is the on-disk YAML shape.
//
//	db: ~/music/stave.db
//	seed: 42
//	questions_per_kind: 3
//	session_minutes: 15
//	kinds: [rhythm, intervals.naming]
//	llm:
//	  provider: anthropic
//	  model: claude-sonnet
//	  timeout: 30s
type File struct {
	DB               string   `yaml:"db,omitempty"`
	Seed             uint64   `yaml:"seed,omitempty"`
	QuestionsPerKind int      `yaml:"questions_per_kind,omitempty"`
	SessionMinutes   int      `yaml:"session_minutes,omitempty"`
	Kinds            []string `yaml:"kinds,omitempty"`
	LLM              LLMFile  `yaml:"llm,omitempty"`
}

// LLMFile configures the tutor backend. API keys are better kept in the
// environment, but a key here is honoured.
type LLMFile struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
}

// Settings is the resolved configuration.
type Settings struct {
	// DB is the sqlite path of the question bank and LLM log.
	DB string

	// Seed fixes session randomness. Zero draws a fresh seed per run.
	Seed uint64

	QuestionsPerKind int
	SessionDuration  time.Duration

	// Kinds restricts practice to these kinds. Empty allows every kind.
	Kinds []quiz.Kind

	LLM llm.Config

	// Source is the config file that was read, or "" if none was.
	Source string
}

// Options controls where Load looks.
type Options struct {
	// Path is an explicit config file. A missing explicit file is an error;
	// a missing default file is not.
	Path string

	// EnvFile is the dotenv file to read. Defaults to ".env".
	EnvFile string

	// Getenv reads the process environment. Defaults to os.Getenv.
	Getenv func(string) string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		QuestionsPerKind: 3,
		SessionDuration:  15 * time.Minute,
		LLM:              llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/stave/config.yaml, falling back to
// ~/.config/stave/config.yaml.
func DefaultPath(getenv func(string) string) (string, error) {
	base := getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDir, configFile), nil
}

// Load resolves settings from every layer except flags.
func Load(opts Options) (*Settings, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	s := Defaults()

	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		p, err := DefaultPath(getenv)
		if err != nil {
			return nil, err
		}
		path = p
	}
	f, err := ReadFile(path)
	switch {
	case err == nil:
		s.Source = path
		if err := s.applyFile(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}
	// Like godotenv.Load, the process environment wins over the file.
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if err := s.applyEnv(lookup); err != nil {
		return nil, err
	}
	if !s.LLM.Enabled() {
		llm.Discover(&s.LLM, lookup)
	}

	if s.DB == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		s.DB = p
	}
	return &s, nil
}

// ReadFile parses a YAML config file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// WriteFile saves f as YAML, creating the parent directory.
func WriteFile(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func (s *Settings) applyFile(f *File) error {
	if f.DB != "" {
		s.DB = expandHome(f.DB)
	}
	if f.Seed != 0 {
		s.Seed = f.Seed
	}
	if f.QuestionsPerKind != 0 {
		s.QuestionsPerKind = f.QuestionsPerKind
	}
	if f.SessionMinutes != 0 {
		s.SessionDuration = time.Duration(f.SessionMinutes) * time.Minute
	}
	if len(f.Kinds) > 0 {
		kinds, err := ResolveKinds(f.Kinds)
		if err != nil {
			return err
		}
		s.Kinds = kinds
	}

	if f.LLM.Provider != "" {
		s.LLM.Provider = strings.ToLower(f.LLM.Provider)
	}
	if b := s.LLM.Backend(s.LLM.Provider); b != nil {
		if f.LLM.Model != "" {
			b.Model = f.LLM.Model
		}
		if f.LLM.APIKey != "" {
			b.APIKey = f.LLM.APIKey
		}
		if f.LLM.BaseURL != "" {
			b.BaseURL = f.LLM.BaseURL
		}
	}
	if f.LLM.Timeout != "" {
		d, err := time.ParseDuration(f.LLM.Timeout)
		if err != nil {
			return fmt.Errorf("llm.timeout: %w", err)
		}
		s.LLM.Timeout = d
	}
	return nil
}

func (s *Settings) applyEnv(getenv func(string) string) error {
	if v := getenv("STAVE_DB"); v != "" {
		s.DB = v
	}
	if v := getenv("STAVE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("STAVE_SEED: %w", err)
		}
		s.Seed = seed
	}
	if v := getenv("STAVE_QUESTIONS_PER_KIND"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STAVE_QUESTIONS_PER_KIND: %w", err)
		}
		s.QuestionsPerKind = n
	}
	if v := getenv("STAVE_KINDS"); v != "" {
		kinds, err := ResolveKinds(strings.Split(v, ","))
		if err != nil {
			return fmt.Errorf("STAVE_KINDS: %w", err)
		}
		s.Kinds = kinds
	}
	llm.ApplyEnv(&s.LLM, getenv)
	return nil
}

// Validate checks the resolved settings.
func (s *Settings) Validate() error {
	if s.QuestionsPerKind < 1 {
		return fmt.Errorf("questions per kind must be at least 1, got %d", s.QuestionsPerKind)
	}
	if s.SessionDuration < 0 {
		return fmt.Errorf("session length must not be negative")
	}
	return s.LLM.Validate()
}

// Allowed returns the kind filter for a session planner, nil when every
// kind is allowed.
func (s *Settings) Allowed() map[quiz.Kind]bool {
	if len(s.Kinds) == 0 {
		return nil
	}
	out := make(map[quiz.Kind]bool, len(s.Kinds))
	for _, k := range s.Kinds {
		out[k] = true
	}
	return out
}

// ResolveKinds turns kind and section names into kinds. A section name
// stands for every kind of the section.
func ResolveKinds(names []string) ([]quiz.Kind, error) {
	var out []quiz.Kind
	seen := make(map[quiz.Kind]bool)
	add := func(k quiz.Kind) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if topics := catalog.BySection(quiz.Section(name)); len(topics) > 0 {
			for _, t := range topics {
				add(t.Kind)
			}
			continue
		}
		t, err := catalog.GetTopic(quiz.Kind(name))
		if err != nil {
			return nil, err
		}
		add(t.Kind)
	}
	return out, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
