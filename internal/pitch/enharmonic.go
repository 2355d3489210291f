package pitch

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

// MaxEnharmonicAttempts bounds the search for a source note with at least
// two other spellings.
const MaxEnharmonicAttempts = 20

var enharmonicOctaves = []int{3, 4, 5}

// Distractor tags for enharmonic questions.
const (
	TagSemitoneUp   = "enharmonic.semitone-up"
	TagSemitoneDown = "enharmonic.semitone-down"
	TagSameSpelling = "enharmonic.same-spelling"
)

// Choice is a spelled option. Tag is empty for the correct spelling.
type Choice struct {
	Text string
	Tag  string
}

// EnharmonicQuestion asks for another spelling of the shown note.
type EnharmonicQuestion struct {
	Clef    notation.Clef
	Source  theory.Pitch
	Choices []Choice
	Answer  string
}

func randomSource(r *rand.Rand) theory.Pitch {
	return theory.Pitch{
		Letter:     dice.Pick(r, theory.Letters),
		Accidental: dice.Pick(r, theory.Accidentals),
		Octave:     dice.Pick(r, enharmonicOctaves),
	}
}

// GenerateEnharmonicQuestion picks a source with at least two enharmonic
// spellings when one turns up within MaxEnharmonicAttempts, then offers one
// of them with two wrong spellings drawn from the neighbouring semitones and
// the source itself.
func GenerateEnharmonicQuestion(r *rand.Rand) EnharmonicQuestion {
	clef := dice.Pick(r, clefPool)
	source := randomSource(r)
	enh := theory.Enharmonics(source)
	for attempt := 0; len(enh) < 2 && attempt < MaxEnharmonicAttempts; attempt++ {
		source = randomSource(r)
		enh = theory.Enharmonics(source)
	}

	correct := dice.Pick(r, enh)
	wrong := []Choice{
		{Text: theory.FromAbs(source.Abs()+1, false).Name(), Tag: TagSemitoneUp},
		{Text: theory.FromAbs(source.Abs()-1, true).Name(), Tag: TagSemitoneDown},
		{Text: source.Name(), Tag: TagSameSpelling},
	}
	wrong = dice.Shuffle(r, wrong)

	choices := []Choice{{Text: correct.Name()}}
	seen := map[string]bool{correct.Name(): true}
	for _, w := range wrong {
		if seen[w.Text] || len(choices) == 3 {
			continue
		}
		seen[w.Text] = true
		choices = append(choices, w)
	}

	return EnharmonicQuestion{
		Clef:    clef,
		Source:  source,
		Choices: dice.Shuffle(r, choices),
		Answer:  correct.Name(),
	}
}

// Explanation gives the shared absolute value.
func (q EnharmonicQuestion) Explanation() string {
	return fmt.Sprintf("%s and %s are the same key on the piano (absolute value %d); only the spelling differs.",
		q.Source.Name(), q.Answer, q.Source.Abs())
}
