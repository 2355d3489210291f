package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
)

func testRequest() *DiagnosisRequest {
	return &DiagnosisRequest{
		Kind:          "intervals.writer",
		Title:         "Writing intervals",
		Prompt:        "Write the note a minor 3rd above D4.",
		PartPrompt:    "Upper note",
		CorrectAnswer: "F4",
		LearnerAnswer: "F#4",
		AnswerFormat:  string(quiz.FormatPitch),
		Candidates:    MisconceptionsBySection(quiz.SectionIntervals),
	}
}

func TestDiagnoser_MatchesCandidate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"misconception_id":"interval.quality","confidence":0.85,"reasoning":"Wrote a major 3rd instead of minor"}`),
	})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	result, err := d.Diagnose(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != CategoryMisconception {
		t.Errorf("category = %q, want misconception", result.Category)
	}
	if result.MisconceptionID != "interval.quality" {
		t.Errorf("misconception = %q, want interval.quality", result.MisconceptionID)
	}
	if result.ClassifierName != "llm" {
		t.Errorf("classifier = %q, want llm", result.ClassifierName)
	}
	if result.Reasoning == "" {
		t.Error("expected reasoning")
	}
}

func TestDiagnoser_NullID(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"misconception_id":null,"confidence":0.2,"reasoning":"No clear pattern"}`),
	})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	result, err := d.Diagnose(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != CategoryUnclassified {
		t.Errorf("category = %q, want unclassified", result.Category)
	}
}

func TestDiagnoser_IDOutsideCandidates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"misconception_id":"cadence.confusion","confidence":0.9,"reasoning":"?"}`),
	})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	result, err := d.Diagnose(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != CategoryUnclassified || result.MisconceptionID != "" {
		t.Errorf("got %+v, want unclassified with no ID", result)
	}
}

func TestDiagnoser_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	if _, err := d.Diagnose(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error")
	}
}

func TestDiagnoser_BadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	if _, err := d.Diagnose(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error")
	}
}

func TestDiagnoser_Prompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"misconception_id":null,"confidence":0,"reasoning":""}`),
	})
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())
	if _, err := d.Diagnose(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != DiagnosisSchema {
		t.Error("expected diagnosis schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Writing intervals", "Learner's answer: F#4", "- interval.number:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Staff:") {
		t.Error("prompt should omit an empty staff")
	}
}
