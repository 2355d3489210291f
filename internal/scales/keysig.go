package scales

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// Sharps are positive, flats negative.
var majorSignatures = map[string]int{
	"Cb": -7, "Gb": -6, "Db": -5, "Ab": -4, "Eb": -3, "Bb": -2, "F": -1,
	"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6, "C#": 7,
}

var minorSignatures = map[string]int{
	"Ab": -7, "Eb": -6, "Bb": -5, "F": -4, "C": -3, "G": -2, "D": -1,
	"A": 0, "E": 1, "B": 2, "F#": 3, "C#": 4, "G#": 5, "D#": 6, "A#": 7,
}

// KeySignature returns the signed accidental count of k.
func KeySignature(k theory.Key) (int, bool) {
	table := majorSignatures
	if k.Mode == theory.Minor {
		table = minorSignatures
	}
	n, ok := table[k.TonicName()]
	return n, ok
}

var (
	sharpOrder = []theory.Pitch{
		theory.MustName("F#", 5), theory.MustName("C#", 5), theory.MustName("G#", 5), theory.MustName("D#", 5),
		theory.MustName("A#", 4), theory.MustName("E#", 5), theory.MustName("B#", 4),
	}
	flatOrder = []theory.Pitch{
		theory.MustName("Bb", 4), theory.MustName("Eb", 5), theory.MustName("Ab", 4), theory.MustName("Db", 5),
		theory.MustName("Gb", 4), theory.MustName("Cb", 5), theory.MustName("Fb", 4),
	}
)

// SignatureAccidentals lists the accidentals of a signature in writing order
// (F C G D A E B for sharps, B E A D G C F for flats), placed for the treble
// staff.
func SignatureAccidentals(count int) []theory.Pitch {
	switch {
	case count > 0:
		return append([]theory.Pitch(nil), sharpOrder[:min(count, 7)]...)
	case count < 0:
		return append([]theory.Pitch(nil), flatOrder[:min(-count, 7)]...)
	}
	return nil
}

// Staff steps each clef's signature sits below the treble placement. Tenor
// sits one step above it.
var signatureShift = map[notation.Clef]int{
	notation.Treble: 0,
	notation.Alto:   1,
	notation.Bass:   2,
	notation.Tenor:  -1,
}

// topLine is the staff position of the fifth line.
const topLine = 8

// SignaturePositions returns the staff position of each accidental when the
// signature is written for clef. In tenor clef the F# and G# that would sit
// above the staff are written an octave lower.
func SignaturePositions(clef notation.Clef, count int) []int {
	accs := SignatureAccidentals(count)
	out := make([]int, len(accs))
	for i, p := range accs {
		pos := notation.StaffPosition(notation.Treble, p) - signatureShift[clef]
		if clef == notation.Tenor && count > 0 && pos > topLine {
			pos -= 7
		}
		out[i] = pos
	}
	return out
}

// DescribeSignature renders a signature as it would appear on clef, e.g.
// "F# (line 5), C# (space 3)".
func DescribeSignature(clef notation.Clef, count int) string {
	if count == 0 {
		return "no sharps or flats"
	}
	accs := SignatureAccidentals(count)
	pos := SignaturePositions(clef, count)
	parts := make([]string, len(accs))
	for i, p := range accs {
		parts[i] = fmt.Sprintf("%s (%s)", p.Name(), notation.DescribePosition(pos[i]))
	}
	return strings.Join(parts, ", ")
}

// Key pools for the key-signature quiz.
var (
	MajorQuizKeys = []string{"C", "G", "D", "A", "E", "B", "F#", "Bb", "Eb", "Ab"}
	MinorQuizKeys = []string{"A", "E", "B", "F#", "C#", "D", "G", "C", "F", "Bb", "Eb"}
)

// MajorProbability is the chance the quiz asks about a major key.
const MajorProbability = 0.6

// Distractor kinds for the key-signature quiz.
const (
	DistractorWrongOrder      = "keysig.wrong-order"
	DistractorWrongClef       = "keysig.wrong-clef"
	DistractorWrongAccidental = "keysig.wrong-accidental"
)

var (
	sharpDistractors = []string{"D", "A", "E"}
	flatDistractors  = []string{"Bb", "Eb", "Ab"}
	accFlatPool      = []string{"F", "Bb", "Eb"}
	accSharpPool     = []string{"D", "A", "E"}
)

// KeySignatureOption is one candidate signature drawn on Clef.
type KeySignatureOption struct {
	ID         string
	Key        theory.Key
	Count      int
	Clef       notation.Clef
	Correct    bool
	Distractor string
}

// Label describes the option for a text staff.
func (o KeySignatureOption) Label() string {
	return fmt.Sprintf("%s clef: %s", o.Clef, DescribeSignature(o.Clef, o.Count))
}

// KeySignatureQuestion asks which signature belongs to the prompt key.
type KeySignatureQuestion struct {
	Key             theory.Key
	Clef            notation.Clef
	Options         []KeySignatureOption
	CorrectOptionID string
}

func pickMajorKey(r *rand.Rand, pool []string, avoid int) theory.Key {
	var cands []theory.Key
	for _, name := range pool {
		k := theory.MustKey(name + " major")
		if n, _ := KeySignature(k); n != avoid {
			cands = append(cands, k)
		}
	}
	return dice.Pick(r, cands)
}

// GenerateKeySignatureQuiz builds the correct signature and one distractor
// per failure type: wrong count in the same family, right signature placed
// for another clef, and the opposite accidental family.
func GenerateKeySignatureQuiz(r *rand.Rand) KeySignatureQuestion {
	var key theory.Key
	if dice.Chance(r, MajorProbability) {
		key = theory.MustKey(dice.Pick(r, MajorQuizKeys) + " major")
	} else {
		key = theory.MustKey(dice.Pick(r, MinorQuizKeys) + " minor")
	}
	clef := dice.Pick(r, notation.Clefs)
	count, _ := KeySignature(key)

	var orderKey theory.Key
	switch {
	case count > 0:
		orderKey = pickMajorKey(r, sharpDistractors, count)
	case count < 0:
		orderKey = pickMajorKey(r, flatDistractors, count)
	default:
		orderKey = theory.MustKey("G major")
	}
	accKey := pickMajorKey(r, accSharpPool, count)
	if count >= 0 {
		accKey = pickMajorKey(r, accFlatPool, count)
	}

	var otherClefs []notation.Clef
	for _, c := range notation.Clefs {
		if signatureShift[c] != signatureShift[clef] {
			otherClefs = append(otherClefs, c)
		}
	}

	option := func(k theory.Key, c notation.Clef, distractor string) KeySignatureOption {
		n, _ := KeySignature(k)
		return KeySignatureOption{Key: k, Count: n, Clef: c, Correct: distractor == "", Distractor: distractor}
	}
	options := dice.Shuffle(r, []KeySignatureOption{
		option(key, clef, ""),
		option(orderKey, clef, DistractorWrongOrder),
		option(key, dice.Pick(r, otherClefs), DistractorWrongClef),
		option(accKey, clef, DistractorWrongAccidental),
	})

	q := KeySignatureQuestion{Key: key, Clef: clef, Options: options}
	for i := range q.Options {
		q.Options[i].ID = fmt.Sprintf("opt-%d", i)
		if q.Options[i].Correct {
			q.CorrectOptionID = q.Options[i].ID
		}
	}
	return q
}

// Explanation names the signature of the prompt key.
func (q KeySignatureQuestion) Explanation() string {
	n, _ := KeySignature(q.Key)
	return fmt.Sprintf("%s has %s. In the %s clef they sit at %s.",
		q.Key, countPhrase(n), q.Clef, DescribeSignature(q.Clef, n))
}

func countPhrase(n int) string {
	switch {
	case n == 1:
		return "1 sharp"
	case n == -1:
		return "1 flat"
	case n > 0:
		return fmt.Sprintf("%d sharps", n)
	case n < 0:
		return fmt.Sprintf("%d flats", -n)
	}
	return "no sharps or flats"
}
