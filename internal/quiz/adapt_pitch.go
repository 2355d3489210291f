package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/pitch"
	"github.com/abhisek/stave/internal/theory"
)

// TagReadAsTreble marks a letter read as if the note were in the treble clef.
const TagReadAsTreble = "pitch.read-as-treble"

// TagWrongLetter marks any other wrong letter.
const TagWrongLetter = "pitch.wrong-letter"

// TagOctaveCompare marks a misjudged octave comparison.
const TagOctaveCompare = "pitch.octave"

func pitchNaming(r *rand.Rand) Question {
	q := pitch.GenerateNamingQuestion(r)
	trebleLetter := notation.Treble.BottomLine().Letter.Step(notation.StaffPosition(q.Clef, q.Note))

	choices := make([]Choice, len(q.Choices))
	for i, l := range q.Choices {
		choices[i] = Choice{Text: l.String()}
		switch {
		case l == q.Answer:
		case q.Clef != notation.Treble && l == trebleLetter:
			choices[i].Tag = TagReadAsTreble
		default:
			choices[i].Tag = TagWrongLetter
		}
	}
	return Question{
		Prompt:      "Name this note (letter only).",
		Staff:       []string{clefStaff(q.Clef, []theory.Pitch{q.Note})},
		Parts:       []Part{choicePart("letter", "Letter name", choices, q.Answer.String())},
		Explanation: q.Explanation(),
	}
}

func enharmonic(r *rand.Rand) Question {
	q := pitch.GenerateEnharmonicQuestion(r)
	choices := make([]Choice, len(q.Choices))
	for i, c := range q.Choices {
		choices[i] = Choice{Text: c.Text, Tag: c.Tag}
	}
	return Question{
		Prompt:      fmt.Sprintf("Which note sounds the same as %s?", q.Source.Name()),
		Staff:       []string{clefStaff(q.Clef, []theory.Pitch{q.Source})},
		Parts:       []Part{choicePart("enharmonic", "Enharmonic equivalent", choices, q.Answer)},
		Explanation: q.Explanation(),
	}
}

func transposition(r *rand.Rand) Question {
	q := pitch.GenerateTranspositionQuestion(r)
	parts := make([]Part, len(q.Checks))
	for i, c := range q.Checks {
		parts[i] = trueFalsePart(c.ID, c.Label+" is correct.", c.IsCorrect, c.Error)
	}
	return Question{
		Prompt: q.Prompt,
		Staff: []string{
			fmt.Sprintf("%s | key: %s | %s", q.Clef, q.ModelKey, notation.Pitches(q.Model)),
			fmt.Sprintf("%s | key: %s | %s", q.Clef, q.ShownKey, notation.Pitches(q.Shown)),
		},
		Parts:       parts,
		Explanation: q.Explanation(),
	}
}

func pitchComparison(r *rand.Rand) Question {
	q := pitch.GeneratePitchComparisonQuestion(r)
	staff := make([]string, len(q.Bars))
	for i, b := range q.Bars {
		staff[i] = fmt.Sprintf("%s: %s", b.ID, clefStaff(b.Clef, []theory.Pitch{b.Note}))
	}
	parts := make([]Part, len(q.Statements))
	for i, s := range q.Statements {
		parts[i] = trueFalsePart(s.ID, s.Text, s.Answer, TagOctaveCompare)
	}
	return Question{
		Prompt:      "Each bar holds one note in a different clef. Decide whether each statement is true.",
		Staff:       staff,
		Parts:       parts,
		Explanation: q.Explanation(),
	}
}
