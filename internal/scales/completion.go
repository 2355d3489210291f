package scales

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// startOctave puts a scale on the staff: low for the bass clef.
func startOctave(c notation.Clef) int {
	if c == notation.Bass {
		return 2
	}
	return 4
}

var (
	completionTonics = []string{"B", "C#", "Eb", "F#", "G"}
	completionTypes  = []Type{HarmonicMinor, MelodicMinor}
	unrelatedX       = []string{"A#", "Bb", "E"}
	unrelatedY       = []string{"F#", "Gb", "C"}
)

// Blank positions in a scale-completion question.
var MissingIndexes = [2]int{2, 6}

// Distractor tags for scale completion.
const (
	TagSemitoneUp   = "scale.semitone-up"
	TagSemitoneDown = "scale.semitone-down"
	TagUnrelated    = "scale.unrelated"
)

// NoteOption is a spelled option for a blank.
type NoteOption struct {
	Name string
	Tag  string
}

// Blank is one missing scale note.
type Blank struct {
	Index   int
	Label   string
	Options []NoteOption
	Answer  string
}

// CompletionQuestion shows a minor scale with two notes removed.
type CompletionQuestion struct {
	Tonic  theory.Pitch
	Type   Type
	Clef   notation.Clef
	Notes  []theory.Pitch
	Blanks []Blank
}

// GenerateScaleCompletion blanks degrees 3 and 7 of a harmonic or melodic
// minor scale. Each blank offers the answer, its upper and lower semitone
// neighbours and one unrelated note.
func GenerateScaleCompletion(r *rand.Rand) CompletionQuestion {
	clef := dice.Pick(r, notation.Clefs)
	tonic := theory.MustName(dice.Pick(r, completionTonics), startOctave(clef))
	t := dice.Pick(r, completionTypes)
	notes := Scale(tonic, t)

	q := CompletionQuestion{Tonic: tonic, Type: t, Clef: clef, Notes: notes}
	for i, idx := range MissingIndexes {
		pool := unrelatedX
		label := "X"
		if i == 1 {
			pool, label = unrelatedY, "Y"
		}
		q.Blanks = append(q.Blanks, Blank{
			Index:   idx,
			Label:   label,
			Options: blankOptions(r, notes[idx], pool),
			Answer:  notes[idx].Name(),
		})
	}
	return q
}

func blankOptions(r *rand.Rand, answer theory.Pitch, unrelated []string) []NoteOption {
	opts := []NoteOption{
		{Name: answer.Name()},
		{Name: theory.FromAbs(answer.Abs()+1, false).Name(), Tag: TagSemitoneUp},
		{Name: theory.FromAbs(answer.Abs()-1, true).Name(), Tag: TagSemitoneDown},
	}
	taken := map[string]bool{}
	for _, o := range opts {
		taken[o.Name] = true
	}
	var free []string
	for _, n := range unrelated {
		if !taken[n] {
			free = append(free, n)
		}
	}
	opts = append(opts, NoteOption{Name: dice.Pick(r, free), Tag: TagUnrelated})
	return dice.Shuffle(r, opts)
}

// Explanation lists the full scale.
func (q CompletionQuestion) Explanation() string {
	return fmt.Sprintf("%s %s: %s. X is %s and Y is %s.",
		q.Tonic.Name(), q.Type, notation.Pitches(q.Notes), q.Blanks[0].Answer, q.Blanks[1].Answer)
}

var chromaticTonics = []string{"C", "Eb", "F", "G"}

// ChromaticAuditQuestion shows eight chromatic notes and asks whether they
// follow the spelling convention: sharps going up, flats coming down.
type ChromaticAuditQuestion struct {
	Clef      notation.Clef
	Tonic     theory.Pitch
	Ascending bool
	Notes     []theory.Pitch
	IsCorrect bool
}

// GenerateChromaticScaleAudit spells the run with or against the convention
// with equal probability.
func GenerateChromaticScaleAudit(r *rand.Rand) ChromaticAuditQuestion {
	clef := dice.Pick(r, notation.Clefs)
	tonic := theory.MustName(dice.Pick(r, chromaticTonics), startOctave(clef))
	ascending := dice.Chance(r, 0.5)
	useCorrect := dice.Chance(r, 0.5)
	preferFlats := useCorrect
	if ascending {
		preferFlats = !useCorrect
	}

	start := tonic.Abs()
	notes := make([]theory.Pitch, 8)
	for i := range notes {
		step := i
		if !ascending {
			step = 7 - i
		}
		notes[i] = theory.FromAbs(start+step, preferFlats)
	}
	return ChromaticAuditQuestion{Clef: clef, Tonic: tonic, Ascending: ascending, Notes: notes, IsCorrect: useCorrect}
}

// Explanation states the rule being tested.
func (q ChromaticAuditQuestion) Explanation() string {
	if q.Ascending {
		return "A chromatic scale going up is usually written with sharps."
	}
	return "A chromatic scale coming down is usually written with flats."
}
