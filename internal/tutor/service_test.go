package tutor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/diagnosis"
	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
)

func validLessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Counting interval numbers",
		"explanation": "Count every letter name from the lower note to the upper note, including both.",
		"worked_example": "1. Lower note D\n2. Count D E F G\n3. Four letters: a 4th",
		"tip": "Both ends count."
	}`)
}

func testInput(t *testing.T) LessonInput {
	t.Helper()
	topic, err := catalog.GetTopic("intervals.naming")
	if err != nil {
		t.Fatalf("topic: %v", err)
	}
	q, err := quiz.NewRegistry().Generate(topic.Kind, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return LessonInput{
		Topic:    topic,
		Question: q,
		Accuracy: 0.4,
		RecentErrors: []string{
			`Answered "Major 3rd" for 'Name the interval', correct answer was Perfect 4th`,
		},
		LastDiagnosis: &diagnosis.DiagnosisResult{
			Category:        diagnosis.CategoryMisconception,
			MisconceptionID: "interval.number",
		},
	}
}

func waitLesson(t *testing.T, svc *Service) (*Lesson, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			return svc.ConsumeLesson()
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("lesson was not ready in time")
	return nil, false
}

func TestService_GeneratesLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestLesson(t.Context(), testInput(t))
	lesson, ok := waitLesson(t, svc)
	if !ok {
		t.Fatal("expected a lesson")
	}
	if lesson.Kind != "intervals.naming" {
		t.Errorf("kind = %q", lesson.Kind)
	}
	if lesson.Title != "Counting interval numbers" {
		t.Errorf("title = %q", lesson.Title)
	}
	if lesson.Tip != "Both ends count." {
		t.Errorf("tip = %q", lesson.Tip)
	}

	// Consumed lessons are not returned twice.
	if _, ok := svc.ConsumeLesson(); ok {
		t.Error("expected empty slot after consumption")
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, ok := svc.ConsumeLesson(); ok {
		t.Error("expected nothing before a request")
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	svc.RequestLesson(t.Context(), testInput(t))
	deadline := time.Now().Add(5 * time.Second)
	for svc.LastError() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if svc.LastError() == nil {
		t.Fatal("expected an error")
	}
	if _, ok := svc.ConsumeLesson(); ok {
		t.Error("failed generation should not yield a lesson")
	}
}

func TestService_Poll(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("boom")},
		llm.MockResponse{Content: validLessonJSON()},
	)
	svc := NewService(mock, DefaultConfig())

	if _, done, _ := svc.Poll(); done {
		t.Fatal("nothing requested yet")
	}

	poll := func() (*Lesson, error) {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if lesson, done, err := svc.Poll(); done {
				return lesson, err
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Fatal("request did not finish in time")
		return nil, nil
	}

	svc.RequestLesson(t.Context(), testInput(t))
	if lesson, err := poll(); err == nil || lesson != nil {
		t.Errorf("first poll = %v, %v; want provider error", lesson, err)
	}
	if svc.LastError() != nil {
		t.Error("poll should clear the error")
	}

	svc.RequestLesson(t.Context(), testInput(t))
	lesson, err := poll()
	if err != nil || lesson == nil {
		t.Fatalf("second poll = %v, %v; want a lesson", lesson, err)
	}
}

func TestService_Request(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), testInput(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := mock.Calls[0]
	if req.Schema != LessonSchema {
		t.Error("expected lesson schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Topic: Naming Intervals", "Student accuracy on this topic: 40%", "Misconception: interval.number", "Recent Errors:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildLessonUserMessage_NoErrors(t *testing.T) {
	input := testInput(t)
	input.RecentErrors = nil
	input.LastDiagnosis = nil
	msg := buildLessonUserMessage(input)
	if !strings.Contains(msg, "Recent Errors:\nNone\n") {
		t.Errorf("expected None for empty errors:\n%s", msg)
	}
	if strings.Contains(msg, "Diagnosed Issue") {
		t.Error("unexpected diagnosis section")
	}
}
