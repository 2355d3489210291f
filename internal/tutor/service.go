package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/stave/internal/llm"
)

// Service writes lessons asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Lesson
	err     error
	ready   bool
}

// NewService creates a lesson service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestLesson starts async lesson generation. Only one lesson is in-flight
// at a time; new requests replace pending ones.
func (s *Service) RequestLesson(ctx context.Context, input LessonInput) {
	go func() {
		lesson, err := s.Generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = lesson
		s.err = err
		s.ready = true
	}()
}

// ConsumeLesson returns the pending lesson if one is ready.
// Returns (nil, false) if no lesson is ready yet or generation failed.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeLesson() (*Lesson, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	lesson := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return lesson, lesson != nil
}

// Poll reports the outcome of the last request and clears it. done is false
// while a request is still running or nothing was requested.
func (s *Service) Poll() (lesson *Lesson, done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false, nil
	}
	lesson, err = s.pending, s.err
	s.pending = nil
	s.ready = false
	s.err = nil
	return lesson, true, err
}

// LastError returns the error of the most recent finished request that has
// not been consumed yet.
func (s *Service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type lessonOutput struct {
	Title         string `json:"title"`
	Explanation   string `json:"explanation"`
	WorkedExample string `json:"worked_example"`
	Tip           string `json:"tip"`
}

// Generate writes a lesson synchronously.
func (s *Service) Generate(ctx context.Context, input LessonInput) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(input)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	return &Lesson{
		Kind:          input.Topic.Kind,
		Title:         out.Title,
		Explanation:   out.Explanation,
		WorkedExample: out.WorkedExample,
		Tip:           out.Tip,
	}, nil
}
