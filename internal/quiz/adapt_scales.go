package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/scales"
)

// Scale distractor tags not owned by the scales package.
const (
	TagChromaticSpelling = "scale.chromatic-spelling"
	TagClefConfusion     = "clef.confusion"
	TagDegreeName        = "scale.degree-name"
)

func keySignature(r *rand.Rand) Question {
	q := scales.GenerateKeySignatureQuiz(r)
	choices := make([]Choice, len(q.Options))
	answer := ""
	for i, o := range q.Options {
		choices[i] = Choice{Text: o.Label(), Tag: o.Distractor}
		if o.ID == q.CorrectOptionID {
			answer, choices[i].Tag = o.Label(), ""
		}
	}
	return Question{
		Prompt:      fmt.Sprintf("Which is the key signature of %s in the %s clef?", q.Key, q.Clef),
		Parts:       []Part{choicePart("signature", "Key signature", choices, answer)},
		Explanation: q.Explanation(),
	}
}

func scaleCompletion(r *rand.Rand) Question {
	q := scales.GenerateScaleCompletion(r)
	cells := make([]string, len(q.Notes))
	for i, p := range q.Notes {
		cells[i] = p.String()
	}
	parts := make([]Part, len(q.Blanks))
	for i, b := range q.Blanks {
		cells[b.Index] = b.Label
		choices := make([]Choice, len(b.Options))
		for j, o := range b.Options {
			choices[j] = Choice{Text: o.Name, Tag: o.Tag}
		}
		parts[i] = choicePart(b.Label, fmt.Sprintf("Which note is %s?", b.Label), choices, b.Answer)
	}
	return Question{
		Prompt:      fmt.Sprintf("Complete the scale of %s %s, ascending.", q.Tonic.Name(), q.Type),
		Staff:       []string{fmt.Sprintf("%s clef | %s", q.Clef, strings.Join(cells, " "))},
		Parts:       parts,
		Explanation: q.Explanation(),
	}
}

func chromaticAudit(r *rand.Rand) Question {
	q := scales.GenerateChromaticScaleAudit(r)
	dir := "descending"
	if q.Ascending {
		dir = "ascending"
	}
	return Question{
		Prompt:      fmt.Sprintf("This is a %s chromatic scale starting on %s.", dir, q.Notes[0].Name()),
		Staff:       []string{fmt.Sprintf("%s clef | %s", q.Clef, notation.Pitches(q.Notes))},
		Parts:       []Part{trueFalsePart("spelling", "It is spelled the conventional way.", q.IsCorrect, TagChromaticSpelling)},
		Explanation: q.Explanation(),
	}
}

func clefIdentification(r *rand.Rand) Question {
	q := scales.GenerateClefIdentification(r)
	cells := make([]string, len(q.Positions))
	for i, pos := range q.Positions {
		cells[i] = notation.DescribePosition(pos)
		if acc := q.Notes[i].Accidental.String(); acc != "" {
			cells[i] += " (" + acc + ")"
		}
	}
	return Question{
		Prompt:      fmt.Sprintf("These notes are the scale of %s harmonic minor. Which clef are they written in?", q.Key.TonicName()),
		Staff:       []string{"? clef | " + strings.Join(cells, " | ")},
		Parts:       []Part{choicePart("clef", "Clef", stringChoices(q.Options, q.Answer, TagClefConfusion), string(q.Answer))},
		Explanation: q.Explanation(),
	}
}

func keyAnalysis(r *rand.Rand) Question {
	q := scales.GenerateKeyAnalysis(r)
	choices := make([]Choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = Choice{Text: o.Key.String(), Tag: o.Tag}
	}
	return Question{
		Prompt:      "Name the key of this melody.",
		Staff:       []string{fmt.Sprintf("%s clef | %s", q.Clef, notation.Pitches(q.Melody))},
		Parts:       []Part{choicePart("key", "Key", choices, q.Answer.String())},
		Explanation: q.Explanation(),
	}
}

func technicalNames(r *rand.Rand) Question {
	q := scales.GenerateTechnicalNames(r)
	return Question{
		Prompt:      q.Statement,
		Staff:       []string{fmt.Sprintf("%s clef | %s", q.Clef, q.Shown)},
		Parts:       []Part{trueFalsePart("statement", q.Statement, q.IsTrue, TagDegreeName)},
		Explanation: q.Explanation(),
	}
}
