package scales

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

var clefTargets = []string{"A", "E", "F#", "C"}

// clefOctave keeps a scale near the middle of each staff.
var clefOctave = map[notation.Clef]int{
	notation.Treble: 4,
	notation.Alto:   3,
	notation.Tenor:  3,
	notation.Bass:   2,
}

// ClefIdentificationQuestion shows the staff positions of a harmonic minor
// scale and asks which clef makes them read correctly.
type ClefIdentificationQuestion struct {
	Key       theory.Key
	Notes     []theory.Pitch
	Positions []int
	Options   []notation.Clef
	Answer    notation.Clef
}

// GenerateClefIdentification writes the scale for a random clef. No two
// clefs have bottom lines a whole number of octaves apart, so only the
// answer spells the scale from those positions.
func GenerateClefIdentification(r *rand.Rand) ClefIdentificationQuestion {
	key := theory.MustKey(dice.Pick(r, clefTargets) + " minor")
	clef := dice.Pick(r, notation.Clefs)
	notes := Scale(key.Tonic(clefOctave[clef]), HarmonicMinor)
	pos := make([]int, len(notes))
	for i, n := range notes {
		pos[i] = notation.StaffPosition(clef, n)
	}
	return ClefIdentificationQuestion{
		Key:       key,
		Notes:     notes,
		Positions: pos,
		Options:   append([]notation.Clef(nil), notation.Clefs...),
		Answer:    clef,
	}
}

// Explanation names the tonic's position in the answer clef.
func (q ClefIdentificationQuestion) Explanation() string {
	return fmt.Sprintf("In the %s clef the first note, on %s, is %s: the tonic of %s harmonic minor.",
		q.Answer, notation.DescribePosition(q.Positions[0]), q.Notes[0], q.Key)
}

type keyPair struct {
	correct        string
	alt            string
	characteristic string
}

var keyPairs = []keyPair{
	{correct: "G minor", alt: "Bb major", characteristic: "F#"},
	{correct: "D minor", alt: "F major", characteristic: "C#"},
	{correct: "E major", alt: "C# minor", characteristic: "D#"},
}

var (
	keyPoolA = []string{"A major", "B minor", "F# major"}
	keyPoolB = []string{"E minor", "C major", "D major"}
)

// Distractor tags for key analysis.
const (
	TagRelativeKey  = "key.relative"
	TagUnrelatedKey = "key.unrelated"
)

// KeyOption is a candidate key.
type KeyOption struct {
	Key theory.Key
	Tag string
}

// KeyAnalysisQuestion shows a short melody with a telling accidental.
type KeyAnalysisQuestion struct {
	Clef           notation.Clef
	Melody         []theory.Pitch
	Characteristic theory.Pitch
	Options        []KeyOption
	Answer         theory.Key
	Alternative    theory.Key
}

// GenerateKeyAnalysis takes the first six scale notes and replaces the third
// with the note that tells the key apart from its relative.
func GenerateKeyAnalysis(r *rand.Rand) KeyAnalysisQuestion {
	clef := dice.Pick(r, notation.Clefs)
	pair := dice.Pick(r, keyPairs)
	key := theory.MustKey(pair.correct)
	octave := startOctave(clef)

	melody := KeyScale(key, octave)[:6]
	melody = append([]theory.Pitch(nil), melody...)
	char := theory.MustName(pair.characteristic, octave)
	melody[2] = char

	options := []KeyOption{
		{Key: key},
		{Key: theory.MustKey(pair.alt), Tag: TagRelativeKey},
		{Key: theory.MustKey(dice.Pick(r, keyPoolA)), Tag: TagUnrelatedKey},
		{Key: theory.MustKey(dice.Pick(r, keyPoolB)), Tag: TagUnrelatedKey},
	}
	return KeyAnalysisQuestion{
		Clef:           clef,
		Melody:         melody,
		Characteristic: char,
		Options:        dice.Shuffle(r, options),
		Answer:         key,
		Alternative:    theory.MustKey(pair.alt),
	}
}

// Explanation points at the characteristic note.
func (q KeyAnalysisQuestion) Explanation() string {
	return fmt.Sprintf("The %s gives it away: it belongs to %s, not %s.",
		q.Characteristic.Name(), q.Answer, q.Alternative)
}

var (
	technicalDegrees = []string{"Subdominant", "Leading note", "Submediant", "Dominant"}
	technicalKeys    = []string{"B major", "A minor", "F# minor", "Eb major"}
)

// TechnicalNamesQuestion claims a shown note is a named degree of a key.
type TechnicalNamesQuestion struct {
	Clef      notation.Clef
	Key       theory.Key
	Degree    string
	Correct   theory.Pitch
	Shown     theory.Pitch
	Statement string
	IsTrue    bool
}

// GenerateTechnicalNames shows the degree note or, for a false statement,
// the note a semitone above it.
func GenerateTechnicalNames(r *rand.Rand) TechnicalNamesQuestion {
	key := theory.MustKey(dice.Pick(r, technicalKeys))
	degree := dice.Pick(r, technicalDegrees)
	clef := dice.Pick(r, notation.Clefs)

	t := Major
	if key.Mode == theory.Minor {
		t = HarmonicMinor
	}
	correct := DegreeNote(key.Tonic(4), t, DegreeNumber(degree))

	isTrue := dice.Chance(r, 0.5)
	shown := correct
	if !isTrue {
		shown = theory.FromAbs(correct.Abs()+1, false)
	}
	return TechnicalNamesQuestion{
		Clef:      clef,
		Key:       key,
		Degree:    degree,
		Correct:   correct,
		Shown:     shown,
		Statement: fmt.Sprintf("This note is the %s in %s.", degree, key),
		IsTrue:    isTrue,
	}
}

// Explanation names the real degree note.
func (q TechnicalNamesQuestion) Explanation() string {
	return fmt.Sprintf("The %s of %s is %s.", q.Degree, q.Key, q.Correct.Name())
}
