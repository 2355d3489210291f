package diagnosis

import "github.com/abhisek/stave/internal/llm"

// DiagnosisSchema defines the JSON schema for LLM error diagnosis responses.
var DiagnosisSchema = &llm.Schema{
	Name:        "error-diagnosis",
	Description: "Which known music theory misconception, if any, explains a wrong answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconception_id": map[string]any{
				"type":        []any{"string", "null"},
				"description": "ID of the matching misconception from the candidate list, or null",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "How well the error fits the misconception, from 0 to 1",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One sentence on what the learner most likely did",
			},
		},
		"required":             []any{"misconception_id", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}
