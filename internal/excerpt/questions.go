package excerpt

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/terms"
	"github.com/abhisek/stave/internal/theory"
)

// Distractor tags.
const (
	TagWrongOctave = "excerpt.wrong-octave"
	TagContour     = "excerpt.contour"
	TagRangeMissed = "excerpt.range"
	TagCountOffset = "excerpt.count"
	TagWrongBar    = "excerpt.bar"
)

var optionIDs = []string{"A", "B", "C", "D"}

// TranspositionOption is one rewritten bar.
type TranspositionOption struct {
	ID    string
	Clef  notation.Clef
	Notes []theory.Pitch
	Tag   string
}

// ClefTranspositionQuestion asks which option rewrites a bar an octave lower
// in the alto clef.
type ClefTranspositionQuestion struct {
	Bar      int
	Hand     Hand
	Original []theory.Pitch
	Options  []TranspositionOption
	Answer   string
}

func shift(notes []theory.Pitch, octaves int) []theory.Pitch {
	out := make([]theory.Pitch, len(notes))
	for i, p := range notes {
		p.Octave += octaves
		out[i] = p
	}
	return out
}

// GenerateClefTranspositionQuestion builds the bar 2 right-hand rewrite.
func GenerateClefTranspositionQuestion(r *rand.Rand) ClefTranspositionQuestion {
	a := NewAnalyzer(MusicInContext)
	orig := a.NotesInBar(2, RH)

	swapped := shift(orig, -1)
	swapped[0], swapped[1] = swapped[1], swapped[0]

	opts := dice.Shuffle(r, []TranspositionOption{
		{Clef: notation.Alto, Notes: shift(orig, -1)},
		{Clef: notation.Bass, Notes: shift(orig, -2), Tag: TagWrongOctave},
		{Clef: notation.Tenor, Notes: swapped, Tag: TagContour},
	})
	q := ClefTranspositionQuestion{Bar: 2, Hand: RH, Original: orig}
	for i := range opts {
		opts[i].ID = optionIDs[i]
		if opts[i].Tag == "" {
			q.Answer = opts[i].ID
		}
	}
	q.Options = opts
	return q
}

func (q ClefTranspositionQuestion) Explanation() string {
	return fmt.Sprintf("Every note drops exactly one octave and keeps its order: %s becomes %s.",
		notation.Pitches(q.Original), notation.Pitches(shift(q.Original, -1)))
}

// Assertion is a true/false claim about the excerpt.
type Assertion struct {
	ID     string
	Text   string
	Answer bool
}

// AssertionsQuestion groups claims graded from the analyzer.
type AssertionsQuestion struct {
	Assertions []Assertion
}

// GenerateAssertionsQuestion evaluates six fixed claims. r orders them.
func GenerateAssertionsQuestion(r *rand.Rand) AssertionsQuestion {
	a := NewAnalyzer(MusicInContext)
	largest, _ := a.LargestMelodicInterval(7, LH)
	high := a.Range().High
	want := theory.MustName("C#", 6)

	list := []Assertion{
		{ID: "dynamics", Text: "The music begins quietly.", Answer: a.BeginsLightly()},
		{ID: "cadence", Text: "The last bar outlines the subdominant chord of F# minor.", Answer: a.EndsOnSubdominant()},
		{ID: "leap", Text: "The largest interval in the left hand of bar 7 is a major 3rd.", Answer: largest == MajorThird},
		{ID: "highest", Text: "The highest note in the excerpt is C#6.", Answer: high.Abs() == want.Abs()},
		{ID: "quieter", Text: "The music gets quieter in bar 7.", Answer: slices.Contains(a.FindSymbol(Diminuendo), 7)},
		{ID: "fourth", Text: "The left hand of bar 1 contains a perfect 4th.", Answer: a.BarHasInterval(1, LH, PerfectFourth)},
	}
	return AssertionsQuestion{Assertions: dice.Shuffle(r, list)}
}

func (q AssertionsQuestion) Explanation() string {
	a := NewAnalyzer(MusicInContext)
	largest, _ := a.LargestMelodicInterval(7, LH)
	return fmt.Sprintf("Bar 1 is marked %s. The highest note is %s. The widest left-hand step in bar 7 is a %s.",
		MusicInContext.Bars[0].RH.Dynamics, a.Range().High, largest.Name())
}

var rangeMIDI = map[terms.Range]int{
	"very-low":  43,
	"low":       50,
	"mid-low":   55,
	"mid":       60,
	"mid-high":  65,
	"high":      72,
	"very-high": 79,
}

var suitabilityCandidates = []string{"bassoon", "oboe", "trombone", "double-bass"}

// SuitabilityQuestion asks which instrument best suits a passage.
type SuitabilityQuestion struct {
	Start, End int
	Hand       Hand
	Span       Span
	Options    []terms.Instrument
	Answer     string
}

// GenerateInstrumentSuitabilityQuestion compares the bars 3-4 right-hand
// center against each candidate's register.
func GenerateInstrumentSuitabilityQuestion(r *rand.Rand) SuitabilityQuestion {
	a := NewAnalyzer(MusicInContext)
	span := a.RangeForBars(3, 4, RH)

	var opts []terms.Instrument
	for _, id := range suitabilityCandidates {
		if inst, ok := terms.LookupInstrument(id); ok {
			opts = append(opts, inst)
		}
	}
	q := SuitabilityQuestion{Start: 3, End: 4, Hand: RH, Span: span, Options: dice.Shuffle(r, opts)}
	best := -1
	for _, inst := range opts {
		d := abs(rangeMIDI[inst.Range] - span.Center)
		if best < 0 || d < best {
			best, q.Answer = d, inst.Name
		}
	}
	return q
}

func (q SuitabilityQuestion) Explanation() string {
	return fmt.Sprintf("The passage lies between %s and %s, centred around %s. The %s sits in that register.",
		q.Span.Low, q.Span.High, theory.FromAbs(q.Span.Center, false), q.Answer)
}

// CountQuestion asks for a count with four numeric options.
type CountQuestion struct {
	Prompt  string
	Answer  int
	Options []int
	Note    string
}

// nearbyCounts returns the answer and three distinct positive neighbours, shuffled.
func nearbyCounts(r *rand.Rand, answer int) []int {
	var pool []int
	for _, d := range []int{-2, -1, 1, 2, 3} {
		if v := answer + d; v >= 1 {
			pool = append(pool, v)
		}
	}
	opts := append([]int{answer}, dice.Shuffle(r, pool)[:3]...)
	return dice.Shuffle(r, opts)
}

// GenerateMediantCountQuestion counts the mediant in the left hand.
func GenerateMediantCountQuestion(r *rand.Rand) CountQuestion {
	a := NewAnalyzer(MusicInContext)
	pc := a.MediantPitchClass()
	name := theory.FromAbs(60+pc, false).Name()
	n := a.CountPitchClass(pc, LH)
	return CountQuestion{
		Prompt:  fmt.Sprintf("How many times does the mediant of %s appear in the left hand?", MusicInContext.Key),
		Answer:  n,
		Options: nearbyCounts(r, n),
		Note:    name,
	}
}

// GenerateIntervalCountQuestion counts one melodic interval type across both hands.
func GenerateIntervalCountQuestion(r *rand.Rand) CountQuestion {
	a := NewAnalyzer(MusicInContext)
	var present []IntervalType
	for _, t := range IntervalTypes {
		if a.CountIntervals(t) > 0 {
			present = append(present, t)
		}
	}
	t := dice.Pick(r, present)
	n := a.CountIntervals(t)
	return CountQuestion{
		Prompt:  fmt.Sprintf("How many melodic %ss occur between neighbouring notes within a bar (both hands)?", t.Name()),
		Answer:  n,
		Options: nearbyCounts(r, n),
		Note:    string(t),
	}
}

func (q CountQuestion) Explanation() string {
	return fmt.Sprintf("Counting %s gives %d.", q.Note, q.Answer)
}

// StructureQuestion asks for a rhythm twin and the diminuendo bar.
type StructureQuestion struct {
	Bar               int
	Hand              Hand
	RhythmAnswer      int
	RhythmOptions     []int
	DiminuendoAnswer  int
	DiminuendoOptions []int
}

type handBar struct {
	hand Hand
	bar  int
}

// GenerateStructureSymbolsQuestion picks a bar whose rhythm appears exactly once elsewhere.
func GenerateStructureSymbolsQuestion(r *rand.Rand) StructureQuestion {
	a := NewAnalyzer(MusicInContext)
	var cands []handBar
	for _, h := range Hands {
		for bar := 1; bar <= a.BarCount(); bar++ {
			if len(a.MatchingRhythm(bar, h)) == 1 {
				cands = append(cands, handBar{h, bar})
			}
		}
	}
	pick := dice.Pick(r, cands)
	twin := a.MatchingRhythm(pick.bar, pick.hand)[0]
	dim := a.FindSymbol(Diminuendo)[0]

	return StructureQuestion{
		Bar:               pick.bar,
		Hand:              pick.hand,
		RhythmAnswer:      twin,
		RhythmOptions:     barOptions(r, a.BarCount(), twin, pick.bar),
		DiminuendoAnswer:  dim,
		DiminuendoOptions: barOptions(r, a.BarCount(), dim),
	}
}

func barOptions(r *rand.Rand, bars, answer int, exclude ...int) []int {
	var pool []int
	for b := 1; b <= bars; b++ {
		if b != answer && !slices.Contains(exclude, b) {
			pool = append(pool, b)
		}
	}
	opts := append([]int{answer}, dice.Shuffle(r, pool)[:3]...)
	slices.Sort(opts)
	return opts
}

func (q StructureQuestion) Explanation() string {
	return fmt.Sprintf("Bars %d and %d of the %s share the same note values. The hairpin closing in bar %d is a diminuendo.",
		q.Bar, q.RhythmAnswer, handName(q.Hand), q.DiminuendoAnswer)
}

func handName(h Hand) string {
	if h == LH {
		return "left hand"
	}
	return "right hand"
}

// Overview lists the song header and every bar, both hands.
func Overview() []string {
	a := NewAnalyzer(MusicInContext)
	s := MusicInContext
	lines := []string{fmt.Sprintf("%s (%s, %s, %s)", s.Title, s.Tempo, s.Key, s.TimeSignature)}
	for bar := 1; bar <= a.BarCount(); bar++ {
		lines = append(lines,
			fmt.Sprintf("%d RH | %s", bar, a.Staff(bar, RH)),
			fmt.Sprintf("%d LH | %s", bar, a.Staff(bar, LH)))
	}
	return lines
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
