package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/stave/internal/terms"
)

// Terms distractor tags not owned by the terms package.
const (
	TagOrnamentConfusion = "ornament.confusion"
	TagInstrumentFact    = "instrument.fact"
)

func termDefinition(r *rand.Rand) Question {
	q := terms.GenerateTermsQuestion(r)
	choices := make([]Choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = Choice{Text: o.Text, Tag: o.Tag}
	}
	return Question{
		Prompt:      fmt.Sprintf("What does %q mean?", q.Term.Term),
		Parts:       []Part{choicePart("meaning", "Meaning", choices, q.Answer)},
		Explanation: q.Explanation(),
	}
}

func ornament(r *rand.Rand) Question {
	q := terms.GenerateOrnamentQuestion(r)
	var cells []string
	for _, n := range q.Pattern.Staff() {
		s := n.String()
		if n.Ornament != "" {
			s = "(" + n.Ornament + ") " + s
		}
		cells = append(cells, s)
	}
	staff := strings.Join(cells, " ")
	if q.Pattern.Tuplet > 0 {
		staff += fmt.Sprintf("  [%d-tuplet]", q.Pattern.Tuplet)
	}
	return Question{
		Prompt: "This is how an ornament is played. Which ornament is it?",
		Staff:  []string{"treble clef | " + staff},
		Parts: []Part{choicePart("ornament", "Ornament",
			stringChoices(q.Options, q.Answer, TagOrnamentConfusion), string(q.Answer))},
		Explanation: q.Explanation(),
	}
}

func instrumentFacts(r *rand.Rand) Question {
	q := terms.GenerateInstrumentQuestion(r)
	parts := make([]Part, len(q.Statements))
	for i, s := range q.Statements {
		parts[i] = trueFalsePart(s.ID, s.Text, s.Answer, TagInstrumentFact)
	}
	return Question{
		Prompt:      "Decide whether each statement about instruments is true.",
		Parts:       parts,
		Explanation: q.Explanation(),
	}
}
