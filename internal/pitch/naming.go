// Package pitch generates note-naming, enharmonic, transposition and
// clef-comparison questions.
package pitch

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// clefPool favours the C clefs, which learners find hardest.
var clefPool = []notation.Clef{
	notation.Treble, notation.Bass, notation.Alto, notation.Tenor, notation.Alto, notation.Tenor,
}

// Naming range in absolute values (D3 to F#5).
const (
	namingLow  = 50
	namingHigh = 78
)

// letterChoices is the fixed option order shown for naming questions.
var letterChoices = []theory.Letter{theory.A, theory.B, theory.C, theory.D, theory.E, theory.F, theory.G}

// NamingQuestion asks for the letter name of a note on a staff.
type NamingQuestion struct {
	Clef    notation.Clef
	Note    theory.Pitch
	Choices []theory.Letter
	Answer  theory.Letter
}

// randomSpelledNote draws an absolute value in [lo, hi] and spells it with a
// random sharp or flat preference.
func randomSpelledNote(r *rand.Rand, lo, hi int) theory.Pitch {
	value := dice.Between(r, lo, hi)
	return theory.FromAbs(value, dice.Chance(r, 0.5))
}

// GenerateNamingQuestion places a random note on a random clef.
func GenerateNamingQuestion(r *rand.Rand) NamingQuestion {
	clef := dice.Pick(r, clefPool)
	note := randomSpelledNote(r, namingLow, namingHigh)
	return NamingQuestion{
		Clef:    clef,
		Note:    note,
		Choices: append([]theory.Letter(nil), letterChoices...),
		Answer:  note.Letter,
	}
}

// Explanation names the staff position that gives the answer away.
func (q NamingQuestion) Explanation() string {
	pos := notation.StaffPosition(q.Clef, q.Note)
	return fmt.Sprintf("In the %s clef the note on %s is %s, written here as %s.",
		q.Clef, notation.DescribePosition(pos), q.Answer, q.Note)
}
