package pitch

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// TranspositionErrorProbability is the per-note chance that the shown answer
// carries a mistake.
const TranspositionErrorProbability = 0.55

// TranspositionInterval is the fixed transposition: down a minor third.
const TranspositionInterval = -3

// modelRanges bound each note of the four-note model phrase.
var modelRanges = [][2]int{{57, 74}, {55, 72}, {59, 76}, {57, 74}}

// Transposition error classes.
const (
	ErrorNone     = ""
	ErrorSemitone = "transpose.semitone"
	ErrorSpelling = "transpose.spelling"
	ErrorKey      = "transpose.key"
)

var (
	modelKey       = theory.MustKey("G major")
	wrongAnswerKey = []theory.Key{theory.MustKey("F major"), theory.MustKey("Eb major")}
)

// Check is one tick-or-cross item: the key signature or a note.
type Check struct {
	ID        string
	Label     string
	IsCorrect bool
	Error     string
}

// TranspositionQuestion shows a model phrase and a proposed transposition
// down a minor third; the learner marks each item right or wrong.
type TranspositionQuestion struct {
	Clef      notation.Clef
	ModelKey  theory.Key
	AnswerKey theory.Key
	ShownKey  theory.Key
	Model     []theory.Pitch
	Expected  []theory.Pitch
	Shown     []theory.Pitch
	Checks    []Check
	Prompt    string
}

// InjectTranspositionErrors perturbs each expected note with
// TranspositionErrorProbability. Even positions get a wrong pitch (+1
// semitone); odd positions are respelled with the other accidental family,
// which leaves naturals unchanged.
func InjectTranspositionErrors(r *rand.Rand, expected []theory.Pitch) []theory.Pitch {
	shown := make([]theory.Pitch, len(expected))
	for i, note := range expected {
		if !dice.Chance(r, TranspositionErrorProbability) {
			shown[i] = note
			continue
		}
		if i%2 == 0 {
			shown[i] = theory.Transpose(note, 1, false)
			continue
		}
		shown[i] = theory.FromAbs(note.Abs(), note.Accidental == theory.Sharp)
	}
	return shown
}

// GenerateTranspositionQuestion builds the model, the true transposition and
// a shown answer with injected mistakes.
func GenerateTranspositionQuestion(r *rand.Rand) TranspositionQuestion {
	clef := dice.Pick(r, clefPool)
	model := make([]theory.Pitch, len(modelRanges))
	for i, rng := range modelRanges {
		model[i] = randomSpelledNote(r, rng[0], rng[1])
	}
	expected := theory.TransposeAll(model, TranspositionInterval, true)
	shown := InjectTranspositionErrors(r, expected)

	answerKey := theory.Key{Mode: modelKey.Mode}
	tonic := theory.Transpose(modelKey.Tonic(4), TranspositionInterval, true)
	answerKey.Letter, answerKey.Accidental = tonic.Letter, tonic.Accidental

	shownKey := answerKey
	if dice.Chance(r, TranspositionErrorProbability) {
		shownKey = dice.Pick(r, wrongAnswerKey)
	}

	keyCheck := Check{ID: "key", Label: "Key signature", IsCorrect: shownKey == answerKey}
	if !keyCheck.IsCorrect {
		keyCheck.Error = ErrorKey
	}
	checks := []Check{keyCheck}
	for i, note := range shown {
		c := Check{
			ID:        fmt.Sprintf("n-%d", i),
			Label:     fmt.Sprintf("Note %d", i+1),
			IsCorrect: note.SameSpelling(expected[i]),
		}
		switch {
		case c.IsCorrect:
		case note.Abs() != expected[i].Abs():
			c.Error = ErrorSemitone
		default:
			c.Error = ErrorSpelling
		}
		checks = append(checks, c)
	}

	return TranspositionQuestion{
		Clef:      clef,
		ModelKey:  modelKey,
		AnswerKey: answerKey,
		ShownKey:  shownKey,
		Model:     model,
		Expected:  expected,
		Shown:     shown,
		Checks:    checks,
		Prompt: fmt.Sprintf("The upper line is a melody in %s. The lower line claims to transpose it "+
			"down a minor third. Mark the key signature and each note as correct or incorrect.", modelKey),
	}
}

// Explanation lists the correct transposition.
func (q TranspositionQuestion) Explanation() string {
	return fmt.Sprintf("Down a minor third the key is %s and the notes are %s.",
		q.AnswerKey, notation.Pitches(q.Expected))
}
