package rhythm

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
)

// RestProbability is the chance that a generated token (other than the
// first of the bar) is a rest.
const RestProbability = 0.22

var (
	simpleDurations   = []int{1, 2, 4}
	compoundDurations = []int{1, 2, 3}
)

// Bar is one complete bar of generated rhythm.
type Bar struct {
	Meter      Meter
	Tokens     []Token
	StemGroups [][]int
}

// GenerateRhythm fills every beat group of m with random durations from the
// family's allowed set. StemGroups lists the token indexes of each beat group
// that holds more than one token.
func GenerateRhythm(r *rand.Rand, m Meter) Bar {
	durations := simpleDurations
	if m.Family == Compound {
		durations = compoundDurations
	}

	bar := Bar{Meter: m}
	pos := 0
	for gi, size := range m.Groups {
		var indexes []int
		for ci, chunk := range splitGroup(r, size, durations) {
			rest := dice.Chance(r, RestProbability) && !(gi == 0 && ci == 0)
			tok := NewToken(chunk, rest)
			tok.Start = pos
			pos += chunk
			indexes = append(indexes, len(bar.Tokens))
			bar.Tokens = append(bar.Tokens, tok)
		}
		if len(indexes) > 1 {
			bar.StemGroups = append(bar.StemGroups, indexes)
		}
	}
	return bar
}

func splitGroup(r *rand.Rand, size int, durations []int) []int {
	var out []int
	for remaining := size; remaining > 0; {
		var valid []int
		for _, d := range durations {
			if d <= remaining {
				valid = append(valid, d)
			}
		}
		pick := dice.Pick(r, valid)
		out = append(out, pick)
		remaining -= pick
	}
	return out
}

// TimeSignatureQuestion asks which signature a bar is written in.
type TimeSignatureQuestion struct {
	Bar         Bar
	Choices     []string
	Answer      string
	Explanation string
}

// GenerateTimeSignatureQuestion picks a meter, writes a bar in it and offers
// the correct signature among three others.
func GenerateTimeSignatureQuestion(r *rand.Rand) TimeSignatureQuestion {
	m := mustMeter(dice.Pick(r, TimeSignatureIDs))
	var others []string
	for _, id := range TimeSignatureIDs {
		if id != m.ID {
			others = append(others, id)
		}
	}
	distractors := dice.Shuffle(r, others)[:3]
	return TimeSignatureQuestion{
		Bar:         GenerateRhythm(r, m),
		Choices:     dice.Shuffle(r, append([]string{m.ID}, distractors...)),
		Answer:      m.ID,
		Explanation: timeSignatureExplanation(m),
	}
}

func timeSignatureExplanation(m Meter) string {
	switch {
	case m.Family == Compound:
		return fmt.Sprintf("The answer is %s. It is a compound meter: the notes group in threes "+
			"(6/8 = 3+3, 9/8 = 3+3+3), so each beat feels like a dotted quarter.", m.ID)
	case m.ID == "5/4":
		return "The answer is 5/4. It is an irregular meter of ten eighths, grouped here as " +
			"2+1+2 quarter-note beats."
	case m.ID == "7/8":
		return "The answer is 7/8. It is an irregular meter grouped 2+2+3; the final group of " +
			"three is the clue."
	}
	return fmt.Sprintf("The answer is %s. It is a simple meter: each beat is two eighths "+
		"(3/4 groups as 2+2+2).", m.ID)
}
