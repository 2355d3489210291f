package tutor

import "github.com/abhisek/stave/internal/llm"

// LessonSchema defines the JSON schema for tutor lessons.
var LessonSchema = &llm.Schema{
	Name:        "theory-lesson",
	Description: "A short music theory lesson with an explanation, a worked example and a tip",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the lesson (3-8 words)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Explanation of the rule the learner is missing (3-5 sentences)",
			},
			"worked_example": map[string]any{
				"type":        "string",
				"description": "Step-by-step solution to a similar question, with numbered steps",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One memorable rule of thumb",
			},
		},
		"required":             []any{"title", "explanation", "worked_example", "tip"},
		"additionalProperties": false,
	},
}

// SessionCompressionSchema defines the JSON schema for error compression.
var SessionCompressionSchema = &llm.Schema{
	Name:        "error-summary",
	Description: "Summary of a learner's recent mistakes on one kind of question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence summary of error patterns",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
