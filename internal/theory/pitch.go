// Package theory holds the pitch arithmetic shared by every question module:
// spelled pitches, their absolute (MIDI-style) values, enharmonic search and
// transposition.
package theory

import "fmt"

// Letter is a note letter in diatonic order starting from C.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// Letters lists all seven letters from C.
var Letters = []Letter{C, D, E, F, G, A, B}

var naturalSemitone = [7]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

func (l Letter) String() string {
	if l < C || l > B {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l]
}

// Semitone is the pitch class of the natural note on this letter.
func (l Letter) Semitone() int { return naturalSemitone[l] }

// Step moves n letters up (or down for negative n), wrapping within the octave.
func (l Letter) Step(n int) Letter {
	return Letter(mod(int(l)+n, 7))
}

// Accidental is a signed semitone offset in [-2, 2].
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Accidentals lists every representable accidental.
var Accidentals = []Accidental{DoubleFlat, Flat, Natural, Sharp, DoubleSharp}

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Natural:
		return ""
	case Sharp:
		return "#"
	case DoubleSharp:
		return "x"
	}
	return fmt.Sprintf("Accidental(%d)", int(a))
}

// Pitch is a spelled note.
type Pitch struct {
	Letter     Letter     `json:"letter" msgpack:"l"`
	Accidental Accidental `json:"accidental" msgpack:"a"`
	Octave     int        `json:"octave" msgpack:"o"`
}

// Abs returns the absolute value of p. C4 is 60.
func (p Pitch) Abs() int {
	return (p.Octave+1)*12 + p.Letter.Semitone() + int(p.Accidental)
}

// Name is the spelling without octave, e.g. "F#".
func (p Pitch) Name() string {
	return p.Letter.String() + p.Accidental.String()
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Name(), p.Octave)
}

// Diatonic counts letter steps from C0 and ignores accidentals.
func (p Pitch) Diatonic() int {
	return p.Octave*7 + int(p.Letter)
}

// SameSpelling reports whether p and q have the same letter, accidental and octave.
func (p Pitch) SameSpelling(q Pitch) bool {
	return p == q
}

// OctaveEquivalent reports whether p and q differ by whole octaves.
func OctaveEquivalent(p, q Pitch) bool {
	return mod(p.Abs()-q.Abs(), 12) == 0
}

type spelling struct {
	letter Letter
	acc    Accidental
}

var sharpSpellings = [12]spelling{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

var flatSpellings = [12]spelling{
	{C, Natural}, {D, Flat}, {D, Natural}, {E, Flat}, {E, Natural}, {F, Natural},
	{G, Flat}, {G, Natural}, {A, Flat}, {A, Natural}, {B, Flat}, {B, Natural},
}

// FromAbs spells an absolute value with the canonical sharp or flat name for
// its pitch class.
func FromAbs(value int, preferFlats bool) Pitch {
	table := sharpSpellings
	if preferFlats {
		table = flatSpellings
	}
	s := table[mod(value, 12)]
	return Pitch{Letter: s.letter, Accidental: s.acc, Octave: floorDiv(value, 12) - 1}
}

// Transpose moves p by semitones and respells the result canonically.
func Transpose(p Pitch, semitones int, preferFlats bool) Pitch {
	return FromAbs(p.Abs()+semitones, preferFlats)
}

// TransposeAll applies Transpose to every pitch of a melody.
func TransposeAll(melody []Pitch, semitones int, preferFlats bool) []Pitch {
	out := make([]Pitch, len(melody))
	for i, p := range melody {
		out[i] = Transpose(p, semitones, preferFlats)
	}
	return out
}

// Spell writes value on the given letter, choosing the octave whose natural is
// nearest and clamping the accidental to [-2, 2].
func Spell(letter Letter, value int) Pitch {
	octave := floorDiv(value, 12) - 1
	best := Pitch{Letter: letter, Octave: octave}
	bestDist := abs(value - best.Abs())
	for _, o := range []int{octave - 1, octave + 1} {
		cand := Pitch{Letter: letter, Octave: o}
		if d := abs(value - cand.Abs()); d < bestDist {
			best, bestDist = cand, d
		}
	}
	best.Accidental = Accidental(clamp(value-best.Abs(), -2, 2))
	return best
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
