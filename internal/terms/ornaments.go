package terms

import (
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// Ornament names.
type Ornament string

const (
	Trill        Ornament = "trill"
	UpperTurn    Ornament = "upper turn"
	UpperMordent Ornament = "upper mordent"
	LowerMordent Ornament = "lower mordent"
	Appoggiatura Ornament = "appoggiatura"
	Acciaccatura Ornament = "acciaccatura"
)

// Pattern is how an ornament is played, written out in full.
type Pattern struct {
	Ornament   Ornament
	Notes      []theory.Pitch
	SmallFirst bool
	Tuplet     int
}

func notes(names ...string) []theory.Pitch {
	out := make([]theory.Pitch, len(names))
	for i, n := range names {
		out[i] = theory.MustName(n, 5)
	}
	return out
}

// Patterns lists every written-out ornament.
var Patterns = []Pattern{
	{Ornament: Trill, Notes: notes("E", "F", "E", "F", "E"), Tuplet: 5},
	{Ornament: UpperTurn, Notes: notes("D", "E", "D", "C", "D")},
	{Ornament: UpperMordent, Notes: notes("D", "E", "D")},
	{Ornament: LowerMordent, Notes: notes("D", "C", "D")},
	{Ornament: Appoggiatura, Notes: notes("E", "D"), SmallFirst: true},
	{Ornament: Acciaccatura, Notes: notes("C#", "D"), SmallFirst: true},
}

// Staff renders the pattern; a small first note is marked as a grace note.
func (p Pattern) Staff() []notation.Note {
	out := make([]notation.Note, len(p.Notes))
	for i, n := range p.Notes {
		out[i] = notation.Note{Pitch: n, Duration: notation.Sixteenth}
		if p.SmallFirst && i == 0 {
			out[i].Ornament = "grace"
			out[i].Duration = notation.Eighth
		}
	}
	if p.SmallFirst {
		out[len(out)-1].Duration = notation.Quarter
	}
	return out
}

// OrnamentQuestion shows a written-out ornament and asks for its name.
type OrnamentQuestion struct {
	Pattern Pattern
	Options []Ornament
	Answer  Ornament
}

// GenerateOrnamentQuestion offers the answer and three other ornaments.
func GenerateOrnamentQuestion(r *rand.Rand) OrnamentQuestion {
	p := dice.Pick(r, Patterns)
	var others []Ornament
	for _, o := range Patterns {
		if o.Ornament != p.Ornament {
			others = append(others, o.Ornament)
		}
	}
	options := append([]Ornament{p.Ornament}, dice.Shuffle(r, others)[:3]...)
	return OrnamentQuestion{Pattern: p, Options: dice.Shuffle(r, options), Answer: p.Ornament}
}

var ornamentHints = map[Ornament]string{
	Trill:        "A trill alternates rapidly between the written note and the note above.",
	UpperTurn:    "A turn goes note, upper note, note, lower note, note.",
	UpperMordent: "An upper mordent is a single quick flick to the note above and back.",
	LowerMordent: "A lower mordent is a single quick flick to the note below and back.",
	Appoggiatura: "An appoggiatura leans on the small note, which takes time from the main note.",
	Acciaccatura: "An acciaccatura is a crushed grace note played as quickly as possible.",
}

// Explanation describes the ornament.
func (q OrnamentQuestion) Explanation() string {
	return ornamentHints[q.Answer]
}
