package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/intervals"
	"github.com/abhisek/stave/internal/theory"
)

func intervalNaming(r *rand.Rand) Question {
	q := intervals.GenerateNamingQuestion(r)
	choices := make([]Choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = Choice{Text: o.Label, Tag: o.Tag}
	}
	return Question{
		Prompt:      "Name the interval between the two notes.",
		Staff:       []string{clefStaff(q.Clef, []theory.Pitch{q.Lower, q.Upper})},
		Parts:       []Part{choicePart("interval", "Interval", choices, q.Answer)},
		Explanation: q.Explanation(),
	}
}

func intervalQuality(r *rand.Rand) Question {
	q := intervals.GenerateQualityQuestion(r)
	return Question{
		Prompt: fmt.Sprintf("The lower note is in the %s clef and the upper note in the %s clef. "+
			"What is the quality of the interval?", q.LowClef, q.HighClef),
		Staff: []string{
			"lower: " + clefStaff(q.LowClef, []theory.Pitch{q.Lower}),
			"upper: " + clefStaff(q.HighClef, []theory.Pitch{q.Upper}),
		},
		Parts: []Part{choicePart("quality", "Quality",
			stringChoices(q.Options, q.Answer, intervals.TagQuality), string(q.Answer))},
		Explanation: q.Explanation(),
	}
}

func intervalWriter(r *rand.Rand) Question {
	q := intervals.GenerateWriterQuestion(r)
	return Question{
		Prompt:      fmt.Sprintf("Write the note a %s above %s. Type it with its octave, e.g. Eb4.", q.Label, q.Given),
		Staff:       []string{clefStaff(q.Clef, []theory.Pitch{q.Given})},
		Parts:       []Part{pitchPart("target", "Upper note", q.Target)},
		Explanation: q.Explanation(),
	}
}
