// Package notation describes what a staff renderer needs to draw a question:
// clefs, duration codes and note tokens. It also produces the plain-text
// staff lines shown in the terminal.
package notation

import (
	"fmt"
	"strings"

	"github.com/abhisek/stave/internal/theory"
)

// Clef identifies a staff clef.
type Clef string

const (
	Treble Clef = "treble"
	Bass   Clef = "bass"
	Alto   Clef = "alto"
	Tenor  Clef = "tenor"
)

// Clefs lists every supported clef.
var Clefs = []Clef{Treble, Bass, Alto, Tenor}

var bottomLines = map[Clef]theory.Pitch{
	Treble: {Letter: theory.E, Octave: 4},
	Bass:   {Letter: theory.G, Octave: 2},
	Alto:   {Letter: theory.F, Octave: 3},
	Tenor:  {Letter: theory.D, Octave: 3},
}

// BottomLine is the natural pitch on the lowest staff line.
func (c Clef) BottomLine() theory.Pitch { return bottomLines[c] }

// StaffPosition counts diatonic steps from the bottom line: 0 is line 1,
// 1 is space 1, 8 is line 5. Accidentals do not move a note.
func StaffPosition(c Clef, p theory.Pitch) int {
	return p.Diatonic() - c.BottomLine().Diatonic()
}

// DescribePosition names a staff position, e.g. "line 2", "space 3",
// "2 ledger lines below".
func DescribePosition(pos int) string {
	switch {
	case pos >= 0 && pos <= 8 && pos%2 == 0:
		return fmt.Sprintf("line %d", pos/2+1)
	case pos > 0 && pos < 8:
		return fmt.Sprintf("space %d", pos/2+1)
	case pos == -1:
		return "below the staff"
	case pos == 9:
		return "above the staff"
	case pos < 0:
		return ledger(-pos/2, "below", pos%2 == 0)
	default:
		return ledger((pos-8)/2, "above", pos%2 == 0)
	}
}

func ledger(n int, where string, on bool) string {
	noun := "ledger line"
	if n > 1 {
		noun += "s"
	}
	if on {
		return fmt.Sprintf("on %d %s %s", n, noun, where)
	}
	return fmt.Sprintf("%s %d %s", where, n, noun)
}

// Duration is a renderer duration code.
type Duration string

const (
	Whole     Duration = "w"
	Half      Duration = "h"
	Quarter   Duration = "q"
	Eighth    Duration = "8"
	Sixteenth Duration = "16"
)

// Sixteenths is the undotted length in sixteenth notes.
func (d Duration) Sixteenths() int {
	switch d {
	case Whole:
		return 16
	case Half:
		return 8
	case Quarter:
		return 4
	case Eighth:
		return 2
	case Sixteenth:
		return 1
	}
	return 0
}

var symbols = map[Duration]string{
	Whole: "𝅝", Half: "𝅗𝅥", Quarter: "♩", Eighth: "♪", Sixteenth: "𝅘𝅥𝅯",
}

// Articulation marks.
type Articulation string

const (
	Staccato Articulation = "staccato"
	Tenuto   Articulation = "tenuto"
	Accent   Articulation = "accent"
)

// Note is one renderable token. Rests ignore Pitch.
type Note struct {
	Pitch        theory.Pitch `json:"pitch" msgpack:"p"`
	Duration     Duration     `json:"duration" msgpack:"d"`
	Dots         int          `json:"dots,omitempty" msgpack:"n,omitempty"`
	Rest         bool         `json:"rest,omitempty" msgpack:"r,omitempty"`
	Articulation Articulation `json:"articulation,omitempty" msgpack:"a,omitempty"`
	Ornament     string       `json:"ornament,omitempty" msgpack:"o,omitempty"`
	SlurStart    bool         `json:"slur_start,omitempty" msgpack:"ss,omitempty"`
	SlurEnd      bool         `json:"slur_end,omitempty" msgpack:"se,omitempty"`
}

// Code is the renderer code: duration, "r" for rests, one "d" per dot.
func (n Note) Code() string {
	code := string(n.Duration)
	if n.Rest {
		code += "r"
	}
	return code + strings.Repeat("d", n.Dots)
}

// String renders the note for a terminal, e.g. "C#5♪", "(F#4♪.", "𝄽".
func (n Note) String() string {
	var b strings.Builder
	if n.SlurStart {
		b.WriteByte('(')
	}
	if n.Rest {
		b.WriteString(restName(n.Duration))
	} else {
		b.WriteString(n.Pitch.String())
		b.WriteString(symbols[n.Duration])
	}
	b.WriteString(strings.Repeat(".", n.Dots))
	switch n.Articulation {
	case Staccato:
		b.WriteString("'")
	case Accent:
		b.WriteString(">")
	case Tenuto:
		b.WriteString("_")
	}
	if n.SlurEnd {
		b.WriteByte(')')
	}
	return b.String()
}

func restName(d Duration) string {
	switch d {
	case Whole:
		return "𝄻"
	case Half:
		return "𝄼"
	case Quarter:
		return "𝄽"
	case Eighth:
		return "𝄾"
	}
	return "𝄿"
}

// Line joins notes into one staff line.
func Line(notes []Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

// Pitches renders bare pitches, e.g. "C4 E4 G4".
func Pitches(ps []theory.Pitch) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// BeamLine draws count eighth notes, bracketing each beam group:
// "[♪ ♪] [♪ ♪] ♪".
func BeamLine(count int, groups [][]int) string {
	start := map[int]bool{}
	end := map[int]bool{}
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		start[g[0]] = true
		end[g[len(g)-1]] = true
	}
	parts := make([]string, count)
	for i := range parts {
		s := "♪"
		if start[i] {
			s = "[" + s
		}
		if end[i] {
			s += "]"
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// RhythmLine renders durations only, for bars that carry no pitch:
// "♩ 𝄽 ♪ ♪".
func RhythmLine(notes []Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		s := symbols[n.Duration]
		if n.Rest {
			s = restName(n.Duration)
		}
		parts[i] = s + strings.Repeat(".", n.Dots)
	}
	return strings.Join(parts, " ")
}
