// Package scales builds diatonic scales and key signatures and generates the
// keys-and-scales questions.
package scales

import (
	"strings"

	"github.com/abhisek/stave/internal/theory"
)

// Type is a scale template.
type Type int

const (
	Major Type = iota
	HarmonicMinor
	MelodicMinor
)

func (t Type) String() string {
	switch t {
	case HarmonicMinor:
		return "harmonic minor"
	case MelodicMinor:
		return "melodic minor"
	}
	return "major"
}

var templates = map[Type][]int{
	Major:         {0, 2, 4, 5, 7, 9, 11, 12},
	HarmonicMinor: {0, 2, 3, 5, 7, 8, 11, 12},
	MelodicMinor:  {0, 2, 3, 5, 7, 9, 11, 12},
}

// melodicDescending is the natural minor pattern read from the top.
var melodicDescending = []int{12, 10, 8, 7, 5, 3, 2, 0}

// Scale returns the eight notes of the scale from tonic, one letter per
// degree.
func Scale(tonic theory.Pitch, t Type) []theory.Pitch {
	steps := templates[t]
	root := tonic.Abs()
	out := make([]theory.Pitch, len(steps))
	for i, s := range steps {
		out[i] = theory.Spell(tonic.Letter.Step(i), root+s)
	}
	return out
}

// MelodicMinorDescending returns the descending form from the upper tonic
// down to tonic.
func MelodicMinorDescending(tonic theory.Pitch) []theory.Pitch {
	root := tonic.Abs()
	out := make([]theory.Pitch, len(melodicDescending))
	for i, s := range melodicDescending {
		out[i] = theory.Spell(tonic.Letter.Step(7-i), root+s)
	}
	return out
}

// KeyScale is the scale used for a key: major, or harmonic minor.
func KeyScale(k theory.Key, octave int) []theory.Pitch {
	if k.Mode == theory.Minor {
		return Scale(k.Tonic(octave), HarmonicMinor)
	}
	return Scale(k.Tonic(octave), Major)
}

var degreeNumbers = map[string]int{
	"tonic":        1,
	"supertonic":   2,
	"mediant":      3,
	"subdominant":  4,
	"dominant":     5,
	"submediant":   6,
	"leading note": 7,
	"leading":      7,
}

// DegreeNumber maps a technical name to its degree. Unknown names give 1.
func DegreeNumber(term string) int {
	if n, ok := degreeNumbers[strings.ToLower(strings.TrimSpace(term))]; ok {
		return n
	}
	return 1
}

// DegreeNote returns degree (clamped to 1..8) of the scale on tonic.
func DegreeNote(tonic theory.Pitch, t Type, degree int) theory.Pitch {
	scale := Scale(tonic, t)
	return scale[max(0, min(7, degree-1))]
}
