package diagnosis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
)

func testQuestion(t *testing.T, kind quiz.Kind) *quiz.Question {
	t.Helper()
	q, err := quiz.NewRegistry().Generate(kind, 7)
	if err != nil {
		t.Fatalf("generate %s: %v", kind, err)
	}
	return q
}

// wrongChoice returns a graded wrong part that picked a tagged distractor.
func wrongChoice(t *testing.T, q *quiz.Question) quiz.PartResult {
	t.Helper()
	p := q.Parts[0]
	for _, c := range p.Choices {
		if c.Tag != "" {
			return quiz.Grade(q, map[string]string{p.Label: c.Text}).Parts[0]
		}
	}
	t.Fatalf("%s has no tagged distractor", q.Kind)
	return quiz.PartResult{}
}

func TestService_RuleBasedSpeedRush(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	q := testQuestion(t, "intervals.naming")
	result := svc.Diagnose(context.Background(), q, wrongChoice(t, q), 1500, 0.50, nil)
	if result.Category != CategorySpeedRush {
		t.Errorf("got %q, want %q", result.Category, CategorySpeedRush)
	}
}

func TestService_TaggedDistractor(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	q := testQuestion(t, "intervals.naming")
	part := wrongChoice(t, q)
	result := svc.Diagnose(context.Background(), q, part, 5000, 0.50, nil)
	if result.Category != CategoryMisconception {
		t.Fatalf("got %q, want %q", result.Category, CategoryMisconception)
	}
	if result.MisconceptionID != part.Tag {
		t.Errorf("misconception = %q, want %q", result.MisconceptionID, part.Tag)
	}
}

func TestService_UnclassifiedWithoutLLM(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	q := testQuestion(t, "intervals.writer")
	part := quiz.Grade(q, map[string]string{"target": "X"}).Parts[0]
	result := svc.Diagnose(context.Background(), q, part, 5000, 0.40, nil)
	if result.Category != CategoryUnclassified {
		t.Errorf("got %q, want %q", result.Category, CategoryUnclassified)
	}
	if result.ClassifierName != "none" {
		t.Errorf("got classifier %q, want none", result.ClassifierName)
	}
}

func TestService_LLMFallback(t *testing.T) {
	resp := json.RawMessage(`{"misconception_id":"interval.number","confidence":0.7,"reasoning":"Counted one letter short"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock)
	defer svc.Close()

	q := testQuestion(t, "intervals.writer")
	part := quiz.Grade(q, map[string]string{"target": "X"}).Parts[0]

	done := make(chan *DiagnosisResult, 1)
	result := svc.Diagnose(context.Background(), q, part, 5000, 0.40, func(r *DiagnosisResult) {
		done <- r
	})
	if result.Category != CategoryUnclassified {
		t.Errorf("sync result = %q, want unclassified", result.Category)
	}

	select {
	case r := <-done:
		if r.Category != CategoryMisconception || r.MisconceptionID != "interval.number" {
			t.Errorf("async result = %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for LLM diagnosis")
	}
}

func TestService_NoLLMForTaggedAnswers(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)
	defer svc.Close()

	q := testQuestion(t, "chords.cadence")
	svc.Diagnose(context.Background(), q, wrongChoice(t, q), 5000, 0.40, nil)
	if mock.CallCount() != 0 {
		t.Errorf("LLM calls = %d, want 0", mock.CallCount())
	}
}
