// Package excerpt holds a fixed two-hand score excerpt, read-only queries
// over it, and the context-comprehension questions built from those queries.
package excerpt

import (
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// Hand is a staff of the piano score.
type Hand string

const (
	RH Hand = "RH"
	LH Hand = "LH"
)

// Hands lists both staves, right hand first.
var Hands = []Hand{RH, LH}

// Staff is one hand's bar.
type Staff struct {
	Notes      []notation.Note
	Dynamics   string
	Crescendo  bool
	Diminuendo bool
}

// Bar holds both hands.
type Bar struct {
	RH Staff
	LH Staff
}

// Hand returns the staff for h.
func (b Bar) Hand(h Hand) Staff {
	if h == LH {
		return b.LH
	}
	return b.RH
}

// Song is a score excerpt.
type Song struct {
	Title         string
	Tempo         string
	Key           theory.Key
	TimeSignature string
	Bars          []Bar
}

type noteOpt func(*notation.Note)

func staccato(n *notation.Note) { n.Articulation = notation.Staccato }
func accent(n *notation.Note) { n.Articulation = notation.Accent }
func slurStart(n *notation.Note) { n.SlurStart = true }
func slurEnd(n *notation.Note) { n.SlurEnd = true }

func nt(pitch string, d notation.Duration, opts ...noteOpt) notation.Note {
	p, err := theory.ParsePitch(pitch)
	if err != nil {
		panic(err)
	}
	n := notation.Note{Pitch: p, Duration: d}
	for _, o := range opts {
		o(&n)
	}
	return n
}

const (
	s16 = notation.Sixteenth
	s8  = notation.Eighth
	s4  = notation.Quarter
)

// MusicInContext is the excerpt every context question reads.
var MusicInContext = Song{
	Title:         "Music in Context",
	Tempo:         "Vivace",
	Key:           theory.MustKey("F# minor"),
	TimeSignature: "2/4",
	Bars: []Bar{
		{
			RH: Staff{Dynamics: "pp", Notes: []notation.Note{
				nt("C#5", s16, slurStart), nt("D5", s16), nt("C#5", s16), nt("E5", s16),
				nt("A4", s16, staccato), nt("B4", s16), nt("A4", s16), nt("G#4", s16, slurEnd),
			}},
			LH: Staff{Notes: []notation.Note{nt("F#3", s4), nt("C#3", s4)}},
		},
		{
			RH: Staff{Notes: []notation.Note{
				nt("B4", s16, slurStart), nt("A4", s16), nt("G#4", s16), nt("F#4", s16, staccato),
				nt("G#4", s8), nt("A4", s8, slurEnd),
			}},
			LH: Staff{Notes: []notation.Note{nt("F#3", s8), nt("A3", s8), nt("C#4", s8), nt("A3", s8)}},
		},
		{
			RH: Staff{Notes: []notation.Note{
				nt("G#4", s16, slurStart), nt("F#4", s16), nt("E4", s16), nt("D4", s16),
				nt("E4", s8, staccato), nt("F#4", s8, slurEnd),
			}},
			LH: Staff{Notes: []notation.Note{nt("B2", s4), nt("D3", s4)}},
		},
		{
			RH: Staff{Crescendo: true, Notes: []notation.Note{
				nt("A4", s16), nt("B4", s16, staccato), nt("C#5", s16), nt("D5", s16),
				nt("E5", s16), nt("D5", s16), nt("C#5", s16), nt("B4", s16),
			}},
			LH: Staff{Notes: []notation.Note{nt("A2", s8), nt("C#3", s8), nt("E3", s8), nt("C#3", s8)}},
		},
		{
			RH: Staff{Dynamics: "f", Notes: []notation.Note{
				nt("E5", s16, slurStart), nt("F#5", s16), nt("E5", s16), nt("G#5", s16),
				nt("D5", s8), nt("C#5", s8, slurEnd),
			}},
			LH: Staff{Notes: []notation.Note{nt("F#3", s8), nt("C#4", s8), nt("A3", s8), nt("F#3", s8)}},
		},
		{
			RH: Staff{Dynamics: "p", Notes: []notation.Note{
				nt("E5", s8, staccato), nt("F#5", s8), nt("E5", s8, staccato), nt("D5", s8),
			}},
			LH: Staff{Notes: []notation.Note{nt("D3", s8), nt("F#3", s8), nt("A3", s8), nt("F#3", s8)}},
		},
		{
			RH: Staff{Crescendo: true, Diminuendo: true, Notes: []notation.Note{
				nt("C#5", s4), nt("C#6", s4, accent),
			}},
			LH: Staff{Notes: []notation.Note{
				nt("A3", s16), nt("B3", s16), nt("A3", s16), nt("G#3", s16),
				nt("F#3", s16), nt("E3", s16), nt("D3", s16), nt("C#3", s16),
			}},
		},
		{
			RH: Staff{Dynamics: "sf", Notes: []notation.Note{
				nt("F#5", s8, accent), nt("E5", s8), nt("D5", s8), nt("C#5", s8),
			}},
			LH: Staff{Notes: []notation.Note{nt("B2", s8), nt("D3", s8), nt("F#3", s8), nt("B3", s8)}},
		},
	},
}
