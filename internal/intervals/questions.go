package intervals

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// Distractor tags: each wrong option changes exactly one axis.
const (
	TagQuality  = "interval.quality"
	TagNumber   = "interval.number"
	TagCompound = "interval.compound"
)

var (
	namingNumbers  = []int{2, 3, 4, 5, 6, 7, 9, 10, 11, 12}
	qualityNumbers = []int{3, 4, 5, 6, 7, 9, 10}
	writerNumbers  = []int{3, 5, 7, 10, 12}
)

// randomNote draws any letter and accidental in [minOct, maxOct].
func randomNote(r *rand.Rand, minOct, maxOct int) theory.Pitch {
	return theory.Pitch{
		Letter:     dice.Pick(r, theory.Letters),
		Accidental: dice.Pick(r, theory.Accidentals),
		Octave:     dice.Between(r, minOct, maxOct),
	}
}

func octaves(c notation.Clef, bass, other [2]int) (int, int) {
	if c == notation.Bass {
		return bass[0], bass[1]
	}
	return other[0], other[1]
}

// Option is a labelled interval choice.
type Option struct {
	Label string
	Tag   string
}

// NamingQuestion shows two notes and asks for the interval.
type NamingQuestion struct {
	Clef    notation.Clef
	Lower   theory.Pitch
	Upper   theory.Pitch
	Result  Result
	Answer  string
	Options []Option
}

// flipQuality swaps major and minor, raises perfect to augmented and brings
// augmented or diminished back to the perfect or major baseline.
func flipQuality(res Result) Result {
	switch res.Quality {
	case Major:
		res.Quality = Minor
	case Minor:
		res.Quality = Major
	case Perfect:
		res.Quality = Augmented
	default:
		res.Quality = Major
		if IsPerfectClass(res.Number) {
			res.Quality = Perfect
		}
	}
	return res
}

// withNumber moves res to another number, keeping a quality that exists for
// it.
func withNumber(res Result, number int) Result {
	res.Number = number
	res.Simple = simplify(number)
	res.Compound = number > 8
	switch {
	case IsPerfectClass(number) && (res.Quality == Major || res.Quality == Minor):
		res.Quality = Perfect
	case !IsPerfectClass(number) && res.Quality == Perfect:
		res.Quality = Major
	}
	return res
}

// Distractors returns the three one-axis variants of res.
func Distractors(res Result) []Option {
	compound := withNumber(res, res.Number+7)
	if res.Compound {
		compound = withNumber(res, res.Simple)
	}
	return []Option{
		{Label: Label(flipQuality(res)), Tag: TagQuality},
		{Label: Label(withNumber(res, res.Number+1)), Tag: TagNumber},
		{Label: Label(compound), Tag: TagCompound},
	}
}

// GenerateNamingQuestion builds an interval above a random note and names it.
func GenerateNamingQuestion(r *rand.Rand) NamingQuestion {
	clef := dice.Pick(r, notation.Clefs)
	lo, hi := octaves(clef, [2]int{2, 4}, [2]int{3, 5})
	lower := randomNote(r, lo, hi)
	upper := BuildAbove(lower, dice.Pick(r, namingNumbers), dice.Pick(r, Qualities))
	res := Calculate(lower, upper)
	answer := Label(res)

	options := append([]Option{{Label: answer}}, Distractors(res)...)
	return NamingQuestion{
		Clef:    clef,
		Lower:   lower,
		Upper:   upper,
		Result:  res,
		Answer:  answer,
		Options: dice.Shuffle(r, options),
	}
}

// Explanation counts letters and semitones.
func (q NamingQuestion) Explanation() string {
	return fmt.Sprintf("From %s up to %s spans %d letter names and %d semitones: a %s.",
		q.Lower, q.Upper, q.Result.Number, q.Result.Semitones, q.Answer)
}

// QualityQuestion shows two notes on possibly different clefs and asks for
// the quality only.
type QualityQuestion struct {
	LowClef  notation.Clef
	HighClef notation.Clef
	Lower    theory.Pitch
	Upper    theory.Pitch
	Result   Result
	Answer   Quality
	Options  []Quality
}

// GenerateQualityQuestion offers all five qualities.
func GenerateQualityQuestion(r *rand.Rand) QualityQuestion {
	lowClef := dice.Pick(r, notation.Clefs)
	highClef := dice.Pick(r, notation.Clefs)
	lower := randomNote(r, 2, 4)
	upper := BuildAbove(lower, dice.Pick(r, qualityNumbers), dice.Pick(r, Qualities))
	res := Calculate(lower, upper)
	return QualityQuestion{
		LowClef:  lowClef,
		HighClef: highClef,
		Lower:    lower,
		Upper:    upper,
		Result:   res,
		Answer:   res.Quality,
		Options:  append([]Quality(nil), Qualities...),
	}
}

// Explanation compares with the baseline size.
func (q QualityQuestion) Explanation() string {
	base := Major
	if IsPerfectClass(q.Result.Number) {
		base = Perfect
	}
	return fmt.Sprintf("A %s %s has %d semitones; this one has %d, so it is %s.",
		base, Ordinal(q.Result.Number), Semitones(q.Result.Number, base), q.Result.Semitones, q.Answer)
}

// writerAttempts bounds the search for a target that needs no clamped
// accidental.
const writerAttempts = 20

var writerAccidentals = []theory.Accidental{theory.Flat, theory.Natural, theory.Sharp}

// WriterQuestion asks the learner to spell the note at an interval above a
// given note.
type WriterQuestion struct {
	Clef    notation.Clef
	Given   theory.Pitch
	Number  int
	Quality Quality
	Target  theory.Pitch
	Label   string
}

// GenerateWriterQuestion picks a quality valid for the number and keeps
// drawing until the target is spellable. After writerAttempts misses it
// falls back to the perfect or major interval, which always is.
func GenerateWriterQuestion(r *rand.Rand) WriterQuestion {
	clef := dice.Pick(r, notation.Clefs)
	lo, hi := octaves(clef, [2]int{2, 3}, [2]int{3, 4})
	number := dice.Pick(r, writerNumbers)

	var given, target theory.Pitch
	var quality Quality
	for attempt := 0; ; attempt++ {
		given = theory.Pitch{
			Letter:     dice.Pick(r, theory.Letters),
			Accidental: dice.Pick(r, writerAccidentals),
			Octave:     dice.Between(r, lo, hi),
		}
		quality = dice.Pick(r, ValidQualities(number))
		if attempt >= writerAttempts {
			quality = ValidQualities(number)[0]
		}
		target = BuildAbove(given, number, quality)
		if res := Calculate(given, target); res.Number == number && res.Quality == quality {
			break
		}
	}

	return WriterQuestion{
		Clef:    clef,
		Given:   given,
		Number:  number,
		Quality: quality,
		Target:  target,
		Label:   Label(Result{Number: number, Quality: quality, Compound: number > 8}),
	}
}

// Explanation gives the answer.
func (q WriterQuestion) Explanation() string {
	return fmt.Sprintf("A %s above %s is %s.", q.Label, q.Given, q.Target)
}
