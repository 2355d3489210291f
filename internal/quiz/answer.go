package quiz

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/abhisek/stave/internal/theory"
)

var fold = cases.Fold()

func sameText(a, b string) bool {
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// CheckAnswer compares the learner's input against a part's answer.
// Returns true if the answer is correct.
//
// Normalization rules:
//   - Whitespace is trimmed and text is case folded
//   - Choice parts match the choice text or its 1-based index
//   - True/false parts also accept t/f, yes/no and y/n
//   - Pitch parts are parsed strictly and compared by spelling, so "Eb4"
//     does not match "D#4"
//   - Number parts ignore leading zeros and a plus sign
func CheckAnswer(input string, p Part) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	switch p.Format {
	case FormatMultipleChoice:
		c, ok := ChoiceFor(input, p)
		return ok && sameText(c.Text, p.Answer)

	case FormatTrueFalse:
		if c, ok := ChoiceFor(input, p); ok {
			return sameText(c.Text, p.Answer)
		}
		v, ok := parseBool(input)
		return ok && sameText(boolText(v), p.Answer)

	case FormatPitch:
		got, err := theory.ParsePitch(input)
		if err != nil {
			return false
		}
		want, err := theory.ParsePitch(p.Answer)
		if err != nil {
			return false
		}
		return got.SameSpelling(want)

	case FormatNumber:
		got, err := strconv.Atoi(input)
		if err != nil {
			return false
		}
		want, err := strconv.Atoi(p.Answer)
		return err == nil && got == want
	}
	return false
}

// ChoiceFor resolves the learner's input to a choice by text, then by 1-based
// index.
func ChoiceFor(input string, p Part) (Choice, bool) {
	input = strings.TrimSpace(input)
	for _, c := range p.Choices {
		if sameText(c.Text, input) {
			return c, true
		}
	}
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(p.Choices) {
		return p.Choices[idx-1], true
	}
	if p.Format == FormatTrueFalse {
		if v, ok := parseBool(input); ok {
			for _, c := range p.Choices {
				if sameText(c.Text, boolText(v)) {
					return c, true
				}
			}
		}
	}
	return Choice{}, false
}

// MenuChoice resolves input typed against a numbered menu of p's choices.
// A number in range always selects by position, so choices whose text is
// itself a number stay reachable. Anything else falls back to ChoiceFor.
func MenuChoice(input string, p Part) (Choice, bool) {
	input = strings.TrimSpace(input)
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(p.Choices) {
		return p.Choices[idx-1], true
	}
	return ChoiceFor(input, p)
}

func parseBool(s string) (bool, bool) {
	switch fold.String(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y":
		return true, true
	case "false", "f", "no", "n":
		return false, true
	}
	return false, false
}

func boolText(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// PartResult is the outcome of one part.
type PartResult struct {
	Label   string
	Given   string
	Correct bool

	// Tag is the misconception tag of the chosen distractor, if any.
	Tag string
}

// Result is the outcome of a whole question.
type Result struct {
	Parts []PartResult
}

// Correct reports whether every part was answered correctly.
func (r Result) Correct() bool {
	for _, p := range r.Parts {
		if !p.Correct {
			return false
		}
	}
	return len(r.Parts) > 0
}

// Score is the number of correct parts.
func (r Result) Score() int {
	n := 0
	for _, p := range r.Parts {
		if p.Correct {
			n++
		}
	}
	return n
}

// Tags lists the distractor tags of the wrong parts in part order.
func (r Result) Tags() []string {
	var out []string
	for _, p := range r.Parts {
		if !p.Correct && p.Tag != "" {
			out = append(out, p.Tag)
		}
	}
	return out
}

// Grade checks every part against answers keyed by part label. Missing
// answers are wrong.
func Grade(q *Question, answers map[string]string) Result {
	res := Result{Parts: make([]PartResult, len(q.Parts))}
	for i, p := range q.Parts {
		given := answers[p.Label]
		pr := PartResult{Label: p.Label, Given: given, Correct: CheckAnswer(given, p)}
		if !pr.Correct {
			if c, ok := ChoiceFor(given, p); ok {
				pr.Tag = c.Tag
			}
		}
		res.Parts[i] = pr
	}
	return res
}
