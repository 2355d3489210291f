// Package chords builds triads on scale degrees and generates cadence and
// chord-analysis questions.
package chords

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/scales"
	"github.com/abhisek/stave/internal/theory"
)

var (
	ErrUnknownKey    = errors.New("unknown key")
	ErrUnknownDegree = errors.New("unknown degree")
)

// Roman is a scale degree numeral.
type Roman string

const (
	I  Roman = "I"
	II Roman = "II"
	IV Roman = "IV"
	V  Roman = "V"
)

var degreeIndex = map[Roman]int{I: 0, II: 1, IV: 3, V: 4}

// Inversion is a (root position), b (first) or c (second).
type Inversion string

const (
	RootPosition    Inversion = "a"
	FirstInversion  Inversion = "b"
	SecondInversion Inversion = "c"
)

// Tone is one chord member.
type Tone struct {
	Role  string       `json:"role"`
	Pitch theory.Pitch `json:"pitch"`
}

func (t Tone) String() string { return t.Pitch.String() }

// chordOctave is where root-position triads start.
const chordOctave = 4

// scaleDegree reads index i of a one-octave scale, moving up an octave for
// each wrap.
func scaleDegree(scale []theory.Pitch, i int) theory.Pitch {
	p := scale[i%7]
	p.Octave += i / 7
	return p
}

func up(t Tone) Tone {
	t.Pitch.Octave++
	return t
}

// BuildTriad stacks root, third and fifth on degree of key and voices them
// for inversion. Minor keys use the harmonic minor scale; only V touches the
// seventh degree, so this raises the leading note in V and nowhere else.
func BuildTriad(key string, degree Roman, inversion Inversion) ([]Tone, error) {
	k, err := theory.ParseKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownKey, err)
	}
	if _, ok := scales.KeySignature(k); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	d, ok := degreeIndex[degree]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDegree, degree)
	}

	scale := scales.KeyScale(k, chordOctave)
	tones := []Tone{
		{Role: "root", Pitch: scaleDegree(scale, d)},
		{Role: "third", Pitch: scaleDegree(scale, d+2)},
		{Role: "fifth", Pitch: scaleDegree(scale, d+4)},
	}
	switch inversion {
	case RootPosition:
	case FirstInversion:
		tones = []Tone{tones[1], tones[2], up(tones[0])}
	case SecondInversion:
		tones = []Tone{tones[2], up(tones[0]), up(tones[1])}
	default:
		return nil, fmt.Errorf("unknown inversion %q", inversion)
	}
	return tones, nil
}

func mustTriad(key string, degree Roman, inversion Inversion) []Tone {
	tones, err := BuildTriad(key, degree, inversion)
	if err != nil {
		panic(err)
	}
	return tones
}

// Cadence names.
type Cadence string

const (
	Perfect   Cadence = "perfect"
	Plagal    Cadence = "plagal"
	Imperfect Cadence = "imperfect"
)

// Cadences lists the choices in display order.
var Cadences = []Cadence{Imperfect, Plagal, Perfect}

var imperfectProgressions = [][2]Roman{{I, V}, {II, V}, {IV, V}}

// CadenceProgression returns the two degrees of a cadence. Imperfect
// cadences end on V from one of I, II or IV.
func CadenceProgression(r *rand.Rand, c Cadence) [2]Roman {
	switch c {
	case Perfect:
		return [2]Roman{V, I}
	case Plagal:
		return [2]Roman{IV, I}
	}
	return dice.Pick(r, imperfectProgressions)
}

// Label renders a degree with its inversion, e.g. "IVb".
func Label(degree Roman, inversion Inversion) string {
	return string(degree) + string(inversion)
}
