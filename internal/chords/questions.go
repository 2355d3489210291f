package chords

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
)

var (
	cadenceKeys  = []string{"D major", "F major", "A minor", "C major"}
	analysisKeys = []string{"C minor", "G major", "D minor"}
	labelPool    = []string{"Va", "Vb", "Vc", "Ia", "Ib", "Ic", "IVa", "IVb", "IVc", "IIa", "IIb"}
)

// Chord is one voiced chord split into bass and treble staves.
type Chord struct {
	Degree    Roman
	Inversion Inversion
	Bass      []Tone
	Treble    []Tone
}

func split(degree Roman, inversion Inversion, tones []Tone) Chord {
	return Chord{Degree: degree, Inversion: inversion, Bass: tones[:1], Treble: tones[1:]}
}

// CadenceQuestion shows two chords and asks for the cadence.
type CadenceQuestion struct {
	Key     string
	Cadence Cadence
	Left    Chord
	Right   Chord
	Choices []Cadence
}

// GenerateCadenceTypeQuestion voices the first chord in root position and
// the second in root position or first inversion.
func GenerateCadenceTypeQuestion(r *rand.Rand) CadenceQuestion {
	key := dice.Pick(r, cadenceKeys)
	cadence := dice.Pick(r, Cadences)
	prog := CadenceProgression(r, cadence)
	secondInv := dice.Pick(r, []Inversion{RootPosition, FirstInversion})

	return CadenceQuestion{
		Key:     key,
		Cadence: cadence,
		Left:    split(prog[0], RootPosition, mustTriad(key, prog[0], RootPosition)),
		Right:   split(prog[1], secondInv, mustTriad(key, prog[1], secondInv)),
		Choices: append([]Cadence(nil), Cadences...),
	}
}

// Explanation names the progression.
func (q CadenceQuestion) Explanation() string {
	switch q.Cadence {
	case Perfect:
		return fmt.Sprintf("V to I in %s is a perfect cadence.", q.Key)
	case Plagal:
		return fmt.Sprintf("IV to I in %s is a plagal cadence.", q.Key)
	}
	return fmt.Sprintf("%s to V in %s is an imperfect cadence: it ends on the dominant.", q.Left.Degree, q.Key)
}

type step struct {
	degree    Roman
	inversion Inversion
	label     string
}

var analysisProgression = []step{
	{degree: I, inversion: RootPosition},
	{degree: V, inversion: RootPosition, label: "A"},
	{degree: IV, inversion: FirstInversion, label: "B"},
	{degree: V, inversion: FirstInversion, label: "C"},
	{degree: I, inversion: RootPosition},
}

// AnalysisLabel is one chord the learner names.
type AnalysisLabel struct {
	ID      string
	Index   int
	Answer  string
	Choices []string
}

// AnalysisQuestion shows a five-chord progression with three labelled chords.
type AnalysisQuestion struct {
	Key    string
	Chords []Chord
	Labels []AnalysisLabel
}

// GenerateChordAnalysisQuestion offers each labelled chord's answer with
// three others from the label pool.
func GenerateChordAnalysisQuestion(r *rand.Rand) AnalysisQuestion {
	key := dice.Pick(r, analysisKeys)
	q := AnalysisQuestion{Key: key}
	for i, s := range analysisProgression {
		q.Chords = append(q.Chords, split(s.degree, s.inversion, mustTriad(key, s.degree, s.inversion)))
		if s.label == "" {
			continue
		}
		answer := Label(s.degree, s.inversion)
		var others []string
		for _, l := range dice.Shuffle(r, labelPool) {
			if l != answer {
				others = append(others, l)
			}
		}
		q.Labels = append(q.Labels, AnalysisLabel{
			ID:      s.label,
			Index:   i,
			Answer:  answer,
			Choices: dice.Shuffle(r, append([]string{answer}, others[:3]...)),
		})
	}
	return q
}

// Explanation lists the labelled answers.
func (q AnalysisQuestion) Explanation() string {
	s := "In " + q.Key + ":"
	for _, l := range q.Labels {
		s += fmt.Sprintf(" %s = %s,", l.ID, l.Answer)
	}
	return s[:len(s)-1] + ". Inversion letters: a root position, b first inversion, c second inversion."
}
