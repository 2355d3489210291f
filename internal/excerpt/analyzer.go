package excerpt

import (
	"slices"
	"strings"

	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// IntervalType is a melodic interval named by semitone size, so enharmonic
// spellings of the same distance count together.
type IntervalType string

const (
	MinorSecond   IntervalType = "m2"
	MajorSecond   IntervalType = "M2"
	MinorThird    IntervalType = "m3"
	MajorThird    IntervalType = "M3"
	PerfectFourth IntervalType = "P4"
	Tritone       IntervalType = "TT"
	PerfectFifth  IntervalType = "P5"
	MinorSixth    IntervalType = "m6"
	MajorSixth    IntervalType = "M6"
	MinorSeventh  IntervalType = "m7"
	MajorSeventh  IntervalType = "M7"
	Octave        IntervalType = "P8"
)

// IntervalTypes in ascending size.
var IntervalTypes = []IntervalType{
	MinorSecond, MajorSecond, MinorThird, MajorThird, PerfectFourth, Tritone,
	PerfectFifth, MinorSixth, MajorSixth, MinorSeventh, MajorSeventh, Octave,
}

var intervalNames = map[IntervalType]string{
	MinorSecond:   "minor 2nd",
	MajorSecond:   "major 2nd",
	MinorThird:    "minor 3rd",
	MajorThird:    "major 3rd",
	PerfectFourth: "perfect 4th",
	Tritone:       "tritone",
	PerfectFifth:  "perfect 5th",
	MinorSixth:    "minor 6th",
	MajorSixth:    "major 6th",
	MinorSeventh:  "minor 7th",
	MajorSeventh:  "major 7th",
	Octave:        "octave",
}

// Name is the spoken name, e.g. "major 3rd".
func (t IntervalType) Name() string { return intervalNames[t] }

// Semitones is the size of t, or 0 when t is unknown.
func (t IntervalType) Semitones() int {
	return slices.Index(IntervalTypes, t) + 1
}

// intervalFor names a distance of 1..12 semitones. Unisons and anything
// beyond an octave have no type.
func intervalFor(semitones int) (IntervalType, bool) {
	if semitones < 0 {
		semitones = -semitones
	}
	if semitones < 1 || semitones > len(IntervalTypes) {
		return "", false
	}
	return IntervalTypes[semitones-1], true
}

// Symbol is a performance marking searched by FindSymbol.
type Symbol string

const (
	Crescendo  Symbol = "crescendo"
	Diminuendo Symbol = "diminuendo"
	Staccato   Symbol = "staccato"
	Accent     Symbol = "accent"
)

// Span is the pitch range of a passage.
type Span struct {
	Low    theory.Pitch
	High   theory.Pitch
	Center int
}

// Analyzer answers read-only queries about a song. Bars are numbered from 1.
type Analyzer struct {
	song Song
}

// NewAnalyzer wraps s.
func NewAnalyzer(s Song) *Analyzer {
	return &Analyzer{song: s}
}

// Song returns the analysed excerpt.
func (a *Analyzer) Song() Song { return a.song }

// BarCount is the number of bars.
func (a *Analyzer) BarCount() int { return len(a.song.Bars) }

func (a *Analyzer) staff(bar int, h Hand) (Staff, bool) {
	if bar < 1 || bar > len(a.song.Bars) {
		return Staff{}, false
	}
	return a.song.Bars[bar-1].Hand(h), true
}

// NotesInBar returns the sounding notes of one hand in a bar. Rests are dropped.
func (a *Analyzer) NotesInBar(bar int, h Hand) []theory.Pitch {
	st, ok := a.staff(bar, h)
	if !ok {
		return nil
	}
	var out []theory.Pitch
	for _, n := range st.Notes {
		if !n.Rest {
			out = append(out, n.Pitch)
		}
	}
	return out
}

func (a *Analyzer) melodicIntervals(bar int, h Hand) []IntervalType {
	notes := a.NotesInBar(bar, h)
	var out []IntervalType
	for i := 1; i < len(notes); i++ {
		if t, ok := intervalFor(notes[i].Abs() - notes[i-1].Abs()); ok {
			out = append(out, t)
		}
	}
	return out
}

// CountIntervals counts melodic occurrences of t between adjacent notes of
// the same hand. Barlines break the line.
func (a *Analyzer) CountIntervals(t IntervalType) int {
	n := 0
	for bar := 1; bar <= a.BarCount(); bar++ {
		for _, h := range Hands {
			for _, got := range a.melodicIntervals(bar, h) {
				if got == t {
					n++
				}
			}
		}
	}
	return n
}

// BarHasInterval reports whether either hand of a bar moves by t.
func (a *Analyzer) BarHasInterval(bar int, h Hand, t IntervalType) bool {
	return slices.Contains(a.melodicIntervals(bar, h), t)
}

// LargestMelodicInterval is the widest leap in one hand of a bar.
func (a *Analyzer) LargestMelodicInterval(bar int, h Hand) (IntervalType, bool) {
	var best IntervalType
	found := false
	for _, t := range a.melodicIntervals(bar, h) {
		if !found || t.Semitones() > best.Semitones() {
			best, found = t, true
		}
	}
	return best, found
}

// FindSymbol lists the bars carrying a marking in either hand.
func (a *Analyzer) FindSymbol(s Symbol) []int {
	var bars []int
	for i, b := range a.song.Bars {
		if hasSymbol(b.RH, s) || hasSymbol(b.LH, s) {
			bars = append(bars, i+1)
		}
	}
	return bars
}

func hasSymbol(st Staff, s Symbol) bool {
	switch s {
	case Crescendo:
		return st.Crescendo
	case Diminuendo:
		return st.Diminuendo
	case Staccato, Accent:
		for _, n := range st.Notes {
			if string(n.Articulation) == string(s) {
				return true
			}
		}
	}
	return false
}

// Range spans every note of both hands.
func (a *Analyzer) Range() Span {
	var all []theory.Pitch
	for bar := 1; bar <= a.BarCount(); bar++ {
		for _, h := range Hands {
			all = append(all, a.NotesInBar(bar, h)...)
		}
	}
	return spanOf(all)
}

// RangeForBars spans one hand over bars start..end inclusive. Center is the
// midpoint of the lowest and highest notes, rounded up.
func (a *Analyzer) RangeForBars(start, end int, h Hand) Span {
	var notes []theory.Pitch
	for bar := start; bar <= end; bar++ {
		notes = append(notes, a.NotesInBar(bar, h)...)
	}
	return spanOf(notes)
}

func spanOf(notes []theory.Pitch) Span {
	if len(notes) == 0 {
		return Span{}
	}
	s := Span{Low: notes[0], High: notes[0]}
	for _, p := range notes {
		if p.Abs() < s.Low.Abs() {
			s.Low = p
		}
		if p.Abs() > s.High.Abs() {
			s.High = p
		}
	}
	s.Center = (s.Low.Abs() + s.High.Abs() + 1) / 2
	return s
}

// BeginsLightly reports a pp or p marking in the first bar.
func (a *Analyzer) BeginsLightly() bool {
	if len(a.song.Bars) == 0 {
		return false
	}
	first := a.song.Bars[0]
	for _, d := range []string{first.RH.Dynamics, first.LH.Dynamics} {
		if d == "pp" || d == "p" {
			return true
		}
	}
	return false
}

// EndsOnSubdominant reports whether the last bar, both hands together,
// sounds every pitch class of the subdominant triad.
func (a *Analyzer) EndsOnSubdominant() bool {
	last := a.BarCount()
	if last == 0 {
		return false
	}
	tonic := pitchClass(a.song.Key.Tonic(4))
	third := 4
	if a.song.Key.Mode == theory.Minor {
		third = 3
	}
	root := (tonic + 5) % 12

	var pcs []int
	for _, h := range Hands {
		for _, p := range a.NotesInBar(last, h) {
			pcs = append(pcs, pitchClass(p))
		}
	}
	for _, step := range []int{0, third, 7} {
		if !slices.Contains(pcs, (root+step)%12) {
			return false
		}
	}
	return true
}

// MediantPitchClass is the pitch class a third above the tonic.
func (a *Analyzer) MediantPitchClass() int {
	third := 4
	if a.song.Key.Mode == theory.Minor {
		third = 3
	}
	return (pitchClass(a.song.Key.Tonic(4)) + third) % 12
}

// CountPitchClass counts notes of one hand sounding pitch class pc in any spelling.
func (a *Analyzer) CountPitchClass(pc int, h Hand) int {
	n := 0
	for bar := 1; bar <= a.BarCount(); bar++ {
		for _, p := range a.NotesInBar(bar, h) {
			if pitchClass(p) == pc {
				n++
			}
		}
	}
	return n
}

// MatchingRhythm lists the other bars of the same hand whose durations and
// articulations match bar exactly.
func (a *Analyzer) MatchingRhythm(bar int, h Hand) []int {
	st, ok := a.staff(bar, h)
	if !ok {
		return nil
	}
	want := rhythmShape(st)
	var out []int
	for other := 1; other <= a.BarCount(); other++ {
		if other == bar {
			continue
		}
		o, _ := a.staff(other, h)
		if rhythmShape(o) == want {
			out = append(out, other)
		}
	}
	return out
}

func rhythmShape(st Staff) string {
	parts := make([]string, len(st.Notes))
	for i, n := range st.Notes {
		code := string(n.Duration) + strings.Repeat(".", n.Dots)
		if n.Rest {
			code += "r"
		}
		parts[i] = code + ":" + string(n.Articulation)
	}
	return strings.Join(parts, " ")
}

func pitchClass(p theory.Pitch) int {
	return ((p.Abs() % 12) + 12) % 12
}

// Staff renders one hand of a bar as a plain-text line.
func (a *Analyzer) Staff(bar int, h Hand) string {
	st, ok := a.staff(bar, h)
	if !ok {
		return ""
	}
	line := notation.Line(st.Notes)
	var marks []string
	if st.Dynamics != "" {
		marks = append(marks, st.Dynamics)
	}
	if st.Crescendo {
		marks = append(marks, "cresc.")
	}
	if st.Diminuendo {
		marks = append(marks, "dim.")
	}
	if len(marks) > 0 {
		line += "  (" + strings.Join(marks, ", ") + ")"
	}
	return line
}
