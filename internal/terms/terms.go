// Package terms holds the Italian and German performance terms, ornament
// patterns and instrument facts, and generates questions on them.
package terms

import (
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
)

// Category groups terms by what they describe.
type Category string

const (
	Tempo        Category = "tempo"
	Dynamics     Category = "dynamics"
	Character    Category = "character"
	Articulation Category = "articulation"
	Expression   Category = "expression"
)

// Term is a dictionary entry.
type Term struct {
	Term       string
	Definition string
	Category   Category
}

// Dictionary is every term the quiz asks about.
var Dictionary = []Term{
	{"morendo", "dying away", Dynamics},
	{"largamente", "broadly", Tempo},
	{"mesto", "sad", Character},
	{"dolce", "sweetly", Character},
	{"agitato", "agitated", Character},
	{"sostenuto", "sustained", Expression},
	{"accelerando", "getting faster", Tempo},
	{"ritardando", "getting slower", Tempo},
	{"smorzando", "dying away in tone and speed", Dynamics},
	{"marcato", "marked/accented", Articulation},
	{"sehr ruhig", "very calm", Character},
	{"rasch", "quickly", Tempo},
	{"zart", "delicately", Character},
	{"crescendo", "gradually getting louder", Dynamics},
	{"diminuendo", "gradually getting softer", Dynamics},
}

// TagSameCategory marks a definition from the term's own category, the
// closest kind of confusion; TagOtherCategory marks the rest.
const (
	TagSameCategory  = "terms.same-category"
	TagOtherCategory = "terms.other-category"
)

// Option is a candidate definition.
type Option struct {
	Text string
	Tag  string
}

// TermsQuestion asks for the meaning of a term.
type TermsQuestion struct {
	Term    Term
	Options []Option
	Answer  string
}

// GenerateTermsQuestion prefers distractors from the same category and tops
// up from the rest of the dictionary.
func GenerateTermsQuestion(r *rand.Rand) TermsQuestion {
	term := dice.Pick(r, Dictionary)
	var same, other []Option
	for _, t := range Dictionary {
		switch {
		case t.Term == term.Term:
		case t.Category == term.Category:
			same = append(same, Option{Text: t.Definition, Tag: TagSameCategory})
		default:
			other = append(other, Option{Text: t.Definition, Tag: TagOtherCategory})
		}
	}

	options := []Option{{Text: term.Definition}}
	seen := map[string]bool{term.Definition: true}
	for _, o := range append(dice.Shuffle(r, same), dice.Shuffle(r, other)...) {
		if len(options) == 4 {
			break
		}
		if seen[o.Text] {
			continue
		}
		seen[o.Text] = true
		options = append(options, o)
	}
	return TermsQuestion{Term: term, Options: dice.Shuffle(r, options), Answer: term.Definition}
}

// Explanation restates the entry.
func (q TermsQuestion) Explanation() string {
	return q.Term.Term + " means \"" + q.Term.Definition + "\" (" + string(q.Term.Category) + ")."
}
