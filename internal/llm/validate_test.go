package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func lessonLikeSchema() *Schema {
	return &Schema{
		Name:        "test-lesson",
		Description: "A short lesson",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":  map[string]any{"type": "string"},
				"level":  map[string]any{"type": "integer", "minimum": 1},
				"format": map[string]any{"type": "string", "enum": []any{"text", "staff"}},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"title", "level"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields", `{"title":"Beaming","level":2,"format":"text","steps":["find the beats"]}`, false},
		{"optional fields omitted", `{"title":"Beaming","level":1}`, false},
		{"missing required", `{"title":"Beaming"}`, true},
		{"wrong type", `{"title":"Beaming","level":"two"}`, true},
		{"below minimum", `{"title":"Beaming","level":0}`, true},
		{"enum miss", `{"title":"Beaming","level":1,"format":"audio"}`, true},
		{"array item type", `{"title":"Beaming","level":1,"steps":[1,2]}`, true},
		{"malformed", `{title:}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(lessonLikeSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestValidateResponse_NullableUnion(t *testing.T) {
	schema := &Schema{
		Name: "test-nullable",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{"type": []any{"string", "null"}},
			},
			"required": []string{"id"},
		},
	}
	for _, raw := range []string{`{"id":"interval.quality"}`, `{"id":null}`} {
		if err := validateResponse(schema, json.RawMessage(raw)); err != nil {
			t.Fatalf("%s: unexpected error %v", raw, err)
		}
	}
	if err := validateResponse(schema, json.RawMessage(`{"id":3}`)); err == nil {
		t.Fatal("expected error for numeric id")
	}
}
