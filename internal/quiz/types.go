// Package quiz is the uniform envelope every domain generator is adapted
// into: prompt, plain-text staff, answer parts with shuffled choices, and the
// canonical answers used for grading.
package quiz

import "time"

// Kind identifies a question generator, e.g. "intervals.naming".
type Kind string

// Section groups kinds by topic.
type Section string

const (
	SectionRhythm    Section = "rhythm"
	SectionPitch     Section = "pitch"
	SectionScales    Section = "scales"
	SectionIntervals Section = "intervals"
	SectionChords    Section = "chords"
	SectionContext   Section = "context"
	SectionTerms     Section = "terms"
)

// AllSections returns all sections in display order.
func AllSections() []Section {
	return []Section{
		SectionRhythm,
		SectionPitch,
		SectionScales,
		SectionIntervals,
		SectionChords,
		SectionContext,
		SectionTerms,
	}
}

// SectionDisplayName returns a human-readable name for a section.
func SectionDisplayName(s Section) string {
	switch s {
	case SectionRhythm:
		return "Rhythm & Beaming"
	case SectionPitch:
		return "Pitch"
	case SectionScales:
		return "Keys & Scales"
	case SectionIntervals:
		return "Intervals"
	case SectionChords:
		return "Chords & Cadences"
	case SectionContext:
		return "Music in Context"
	case SectionTerms:
		return "Terms, Signs & Instruments"
	default:
		return string(s)
	}
}

// Format describes how the learner answers a part.
type Format string

const (
	// FormatMultipleChoice means the learner picks one of Choices.
	FormatMultipleChoice Format = "multiple_choice"

	// FormatTrueFalse is a two-choice part with choices "True" and "False".
	FormatTrueFalse Format = "true_false"

	// FormatPitch means the learner types a spelled note such as "Eb4".
	FormatPitch Format = "pitch"

	// FormatNumber means the learner types a whole number.
	FormatNumber Format = "number"
)

// Choice is one option of a choice part.
type Choice struct {
	Text string `json:"text" msgpack:"t"`

	// Tag names the misconception a wrong choice represents. Empty for the
	// correct choice and for distractors with no diagnosis.
	Tag string `json:"tag,omitempty" msgpack:"g,omitempty"`
}

// Part is one gradable answer of a question.
type Part struct {
	Label   string   `json:"label" msgpack:"l"`
	Prompt  string   `json:"prompt" msgpack:"p"`
	Format  Format   `json:"format" msgpack:"f"`
	Choices []Choice `json:"choices,omitempty" msgpack:"c,omitempty"`

	// Answer is the canonical correct answer: the text of the correct
	// choice, a pitch such as "F#4", or a decimal integer.
	Answer string `json:"answer" msgpack:"a"`
}

// Question is a generated, immutable quiz item.
type Question struct {
	ID      string  `json:"id" msgpack:"id"`
	Kind    Kind    `json:"kind" msgpack:"k"`
	Section Section `json:"section" msgpack:"s"`
	Title   string  `json:"title" msgpack:"ti"`

	// Prompt is the question text shown above the staff.
	Prompt string `json:"prompt" msgpack:"p"`

	// Staff holds plain-text staff lines for the terminal.
	Staff []string `json:"staff,omitempty" msgpack:"st,omitempty"`

	Parts []Part `json:"parts" msgpack:"pa"`

	// Explanation is shown after the learner answers. Always present.
	Explanation string `json:"explanation" msgpack:"e"`

	// Seed regenerates the same question for the same engine version.
	Seed      uint64    `json:"seed" msgpack:"sd"`
	CreatedAt time.Time `json:"created_at" msgpack:"ca"`
}

// Part returns the part with the given label.
func (q *Question) Part(label string) (Part, bool) {
	for _, p := range q.Parts {
		if p.Label == label {
			return p, true
		}
	}
	return Part{}, false
}
