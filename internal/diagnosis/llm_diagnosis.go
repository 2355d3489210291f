package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/stave/internal/llm"
)

// DiagnoserConfig holds configuration for the LLM diagnoser.
type DiagnoserConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultDiagnoserConfig returns sensible defaults.
func DefaultDiagnoserConfig() DiagnoserConfig {
	return DiagnoserConfig{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// Diagnoser performs LLM-based misconception identification for answers
// that carry no distractor tag, such as a typed pitch.
type Diagnoser struct {
	provider llm.Provider
	cfg      DiagnoserConfig
}

// NewDiagnoser creates an LLM-based diagnoser.
func NewDiagnoser(provider llm.Provider, cfg DiagnoserConfig) *Diagnoser {
	return &Diagnoser{provider: provider, cfg: cfg}
}

// DiagnosisRequest is the input for LLM misconception identification.
type DiagnosisRequest struct {
	Kind          string
	Title         string
	Prompt        string
	Staff         string
	PartPrompt    string
	CorrectAnswer string
	LearnerAnswer string
	AnswerFormat  string
	Candidates    []*Misconception
}

// diagnosisOutput is the raw LLM response.
type diagnosisOutput struct {
	MisconceptionID *string `json:"misconception_id"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
}

// Diagnose sends a wrong answer to the LLM for misconception identification.
func (d *Diagnoser) Diagnose(ctx context.Context, req *DiagnosisRequest) (*DiagnosisResult, error) {
	ctx = llm.WithPurpose(ctx, "error-diagnosis")

	userMsg, err := buildDiagnosisMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build diagnosis prompt: %w", err)
	}

	llmReq := llm.Request{
		System: diagnosisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DiagnosisSchema,
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	}

	resp, err := d.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM diagnosis failed: %w", err)
	}

	var raw diagnosisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse diagnosis response: %w", err)
	}

	result := &DiagnosisResult{
		Category:       CategoryUnclassified,
		Confidence:     raw.Confidence,
		ClassifierName: "llm",
		Reasoning:      raw.Reasoning,
	}
	if raw.MisconceptionID == nil {
		return result, nil
	}
	for _, c := range req.Candidates {
		if c.ID == *raw.MisconceptionID {
			result.Category = CategoryMisconception
			result.MisconceptionID = c.ID
			return result, nil
		}
	}
	// An ID outside the candidate list counts as no match.
	return result, nil
}

const diagnosisSystemPrompt = `You are an experienced music theory teacher. A learner answered a music theory question incorrectly. Your job is to determine if their error matches a known misconception pattern.

Instructions:
- If the learner's error clearly matches one of the listed misconceptions, return its ID.
- If the error does not match any listed misconception, return null for misconception_id.
- Do NOT invent new misconception IDs. Only use IDs from the list provided.
- Provide a confidence score (0.0–1.0) reflecting how well the error matches.
- Keep reasoning to one sentence.`

var diagnosisUserTemplate = template.Must(template.New("diagnosis").Parse(`Topic: {{.Title}} ({{.Kind}})
Question: {{.Prompt}}
{{if .Staff}}Staff:
{{.Staff}}
{{end}}Part: {{.PartPrompt}}
Correct answer: {{.CorrectAnswer}}
Learner's answer: {{.LearnerAnswer}}
Answer format: {{.AnswerFormat}}

Known misconceptions for this section:
{{range .Candidates}}- {{.ID}}: {{.Description}}
{{end}}`))

func buildDiagnosisMessage(req *DiagnosisRequest) (string, error) {
	var buf bytes.Buffer
	if err := diagnosisUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func newDiagnosisRequest(input *ClassifyInput, candidates []*Misconception) *DiagnosisRequest {
	q := input.Question
	return &DiagnosisRequest{
		Kind:          string(q.Kind),
		Title:         q.Title,
		Prompt:        q.Prompt,
		Staff:         strings.Join(q.Staff, "\n"),
		PartPrompt:    input.Part.Prompt,
		CorrectAnswer: input.Part.Answer,
		LearnerAnswer: input.LearnerAnswer,
		AnswerFormat:  string(input.Part.Format),
		Candidates:    candidates,
	}
}
