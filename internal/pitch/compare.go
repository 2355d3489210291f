package pitch

import (
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

var (
	comparisonBases = []int{60, 62, 64, 65, 67}
	offsetsB        = []int{0, -12, 12}
	offsetsC        = []int{0, 12}
	clefsA          = []notation.Clef{notation.Treble, notation.Alto}
	clefsB          = []notation.Clef{notation.Bass, notation.Tenor}
	clefsC          = []notation.Clef{notation.Alto, notation.Tenor, notation.Treble}
)

// ComparisonBar is one single-note bar.
type ComparisonBar struct {
	ID   string
	Clef notation.Clef
	Note theory.Pitch
}

// Statement is a true/false claim.
type Statement struct {
	ID     string
	Text   string
	Answer bool
}

// ComparisonQuestion shows the same or octave-shifted pitch in three clefs.
type ComparisonQuestion struct {
	Bars       []ComparisonBar
	Statements []Statement
}

// GeneratePitchComparisonQuestion grades each statement by absolute value.
func GeneratePitchComparisonQuestion(r *rand.Rand) ComparisonQuestion {
	base := dice.Pick(r, comparisonBases)
	a := theory.FromAbs(base, false)
	b := theory.FromAbs(base+dice.Pick(r, offsetsB), false)
	c := theory.FromAbs(base+dice.Pick(r, offsetsC), false)

	return ComparisonQuestion{
		Bars: []ComparisonBar{
			{ID: "A", Clef: dice.Pick(r, clefsA), Note: a},
			{ID: "B", Clef: dice.Pick(r, clefsB), Note: b},
			{ID: "C", Clef: dice.Pick(r, clefsC), Note: c},
		},
		Statements: []Statement{
			{ID: "s1", Text: "A and B sound at the same pitch.", Answer: a.Abs() == b.Abs()},
			{ID: "s2", Text: "B is one octave lower than C.", Answer: b.Abs()+12 == c.Abs()},
			{ID: "s3", Text: "C is one octave higher than A.", Answer: c.Abs() == a.Abs()+12},
		},
	}
}

// Explanation spells out the three pitches.
func (q ComparisonQuestion) Explanation() string {
	return "A is " + q.Bars[0].Note.String() + ", B is " + q.Bars[1].Note.String() +
		" and C is " + q.Bars[2].Note.String() + ". Compare the sounding pitch, not the staff position."
}
