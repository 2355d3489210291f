package quiz

import (
	"fmt"
	"strconv"

	"github.com/abhisek/stave/internal/theory"
)

// Choice count limits for choice parts. Letter naming offers all seven letters.
const (
	MinChoices = 2
	MaxChoices = 7
)

// AnswerFormatValidator checks that each part's answer matches its format and
// that choice constraints are satisfied.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(q *Question) *ValidationError {
	for _, p := range q.Parts {
		if msg := checkPart(p); msg != "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("part %q: %s", p.Label, msg),
			}
		}
	}
	return nil
}

func checkPart(p Part) string {
	switch p.Format {
	case FormatMultipleChoice:
		return checkChoices(p)

	case FormatTrueFalse:
		if len(p.Choices) != 2 || p.Choices[0].Text != "True" || p.Choices[1].Text != "False" {
			return "true/false choices must be exactly True, False"
		}
		if p.Answer != "True" && p.Answer != "False" {
			return fmt.Sprintf("answer %q is not True or False", p.Answer)
		}
		return ""

	case FormatPitch:
		if len(p.Choices) > 0 {
			return "pitch format must have empty choices"
		}
		if _, err := theory.ParsePitch(p.Answer); err != nil {
			return fmt.Sprintf("invalid pitch answer %q: %s", p.Answer, err)
		}
		return ""

	case FormatNumber:
		if len(p.Choices) > 0 {
			return "number format must have empty choices"
		}
		n, err := strconv.Atoi(p.Answer)
		if err != nil || strconv.Itoa(n) != p.Answer {
			return fmt.Sprintf("invalid number answer %q", p.Answer)
		}
		return ""
	}
	return fmt.Sprintf("unknown format %q", p.Format)
}

func checkChoices(p Part) string {
	if len(p.Choices) < MinChoices || len(p.Choices) > MaxChoices {
		return fmt.Sprintf("must have %d to %d choices, got %d", MinChoices, MaxChoices, len(p.Choices))
	}
	seen := make(map[string]bool, len(p.Choices))
	matches := 0
	for i, c := range p.Choices {
		if c.Text == "" {
			return fmt.Sprintf("choice %d is empty", i+1)
		}
		key := fold.String(c.Text)
		if seen[key] {
			return fmt.Sprintf("duplicate choice %q", c.Text)
		}
		seen[key] = true
		if sameText(c.Text, p.Answer) {
			matches++
			if c.Tag != "" {
				return fmt.Sprintf("correct choice %q carries distractor tag %q", c.Text, c.Tag)
			}
		}
	}
	if matches != 1 {
		return fmt.Sprintf("answer %q must match exactly one choice, matched %d", p.Answer, matches)
	}
	return ""
}
