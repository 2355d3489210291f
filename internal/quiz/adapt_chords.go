package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/stave/internal/chords"
)

// Chord distractor tags.
const (
	TagCadenceConfusion = "cadence.confusion"
	TagChordInversion   = "chord.inversion"
	TagChordDegree      = "chord.degree"
)

func chordStaff(name string, c chords.Chord) string {
	return fmt.Sprintf("%s | treble: %s | bass: %s", name, tones(c.Treble), tones(c.Bass))
}

func tones(ts []chords.Tone) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func cadence(r *rand.Rand) Question {
	q := chords.GenerateCadenceTypeQuestion(r)
	return Question{
		Prompt: fmt.Sprintf("These two chords end a phrase in %s. Name the cadence.", q.Key),
		Staff:  []string{chordStaff("1", q.Left), chordStaff("2", q.Right)},
		Parts: []Part{choicePart("cadence", "Cadence",
			stringChoices(q.Choices, q.Cadence, TagCadenceConfusion), string(q.Cadence))},
		Explanation: q.Explanation(),
	}
}

// chordTag tells an inversion slip from a wrong degree: labels are a Roman
// numeral followed by one inversion letter.
func chordTag(choice, answer string) string {
	if choice[:len(choice)-1] == answer[:len(answer)-1] {
		return TagChordInversion
	}
	return TagChordDegree
}

func chordAnalysis(r *rand.Rand) Question {
	q := chords.GenerateChordAnalysisQuestion(r)
	labelAt := map[int]string{}
	for _, l := range q.Labels {
		labelAt[l.Index] = l.ID
	}
	staff := make([]string, len(q.Chords))
	for i, c := range q.Chords {
		name := fmt.Sprintf("%d", i+1)
		if id, ok := labelAt[i]; ok {
			name = id
		}
		staff[i] = chordStaff(name, c)
	}

	parts := make([]Part, len(q.Labels))
	for i, l := range q.Labels {
		choices := make([]Choice, len(l.Choices))
		for j, c := range l.Choices {
			choices[j] = Choice{Text: c}
			if c != l.Answer {
				choices[j].Tag = chordTag(c, l.Answer)
			}
		}
		parts[i] = choicePart(l.ID, fmt.Sprintf("Chord %s", l.ID), choices, l.Answer)
	}
	return Question{
		Prompt:      fmt.Sprintf("Name the chords marked A, B and C in %s, with inversion (e.g. IVb).", q.Key),
		Staff:       staff,
		Parts:       parts,
		Explanation: q.Explanation(),
	}
}
