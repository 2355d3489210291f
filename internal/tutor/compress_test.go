package tutor

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/stave/internal/llm"
	"github.com/abhisek/stave/internal/quiz"
)

func TestCompressor_SessionCompression(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "Reads bass clef notes as if they were in the treble clef"}`),
	})
	comp := NewCompressor(mock, DefaultCompressorConfig())

	errs := []string{
		`Answered "E" for 'Name the note', correct answer was G`,
		`Answered "C" for 'Name the note', correct answer was E`,
	}

	type result struct {
		kind    quiz.Kind
		summary string
	}
	done := make(chan result, 1)
	comp.CompressErrors(t.Context(), "pitch.naming", errs, func(kind quiz.Kind, summary string) {
		done <- result{kind, summary}
	})

	select {
	case r := <-done:
		if r.kind != "pitch.naming" {
			t.Errorf("kind = %q", r.kind)
		}
		if r.summary != "Reads bass clef notes as if they were in the treble clef" {
			t.Errorf("unexpected summary: %q", r.summary)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("compression did not complete in time")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "error-summary" {
		t.Error("expected schema name 'error-summary'")
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: Naming Notes") {
		t.Errorf("prompt should name the topic:\n%s", req.Messages[0].Content)
	}
}

func TestCompressor_ErrorSkipsCallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	comp := NewCompressor(mock, DefaultCompressorConfig())

	called := make(chan struct{}, 1)
	comp.CompressErrors(t.Context(), "pitch.naming", []string{"x"}, func(quiz.Kind, string) {
		called <- struct{}{}
	})

	select {
	case <-called:
		t.Fatal("callback should not fire on a bad response")
	case <-time.After(200 * time.Millisecond):
	}
}
