package quiz

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/abhisek/stave/internal/excerpt"
	"github.com/abhisek/stave/internal/notation"
)

func contextClefTransposition(r *rand.Rand) Question {
	q := excerpt.GenerateClefTranspositionQuestion(r)
	choices := make([]Choice, len(q.Options))
	answer := ""
	for i, o := range q.Options {
		choices[i] = Choice{Text: fmt.Sprintf("%s: %s clef | %s", o.ID, o.Clef, notation.Pitches(o.Notes)), Tag: o.Tag}
		if o.ID == q.Answer {
			answer = choices[i].Text
		}
	}
	return Question{
		Prompt: fmt.Sprintf("Which option rewrites bar %d of the right hand one octave lower in the alto clef?", q.Bar),
		Staff: []string{fmt.Sprintf("bar %d %s | treble clef | %s",
			q.Bar, q.Hand, notation.Pitches(q.Original))},
		Parts:       []Part{choicePart("rewrite", "Rewrite", choices, answer)},
		Explanation: q.Explanation(),
	}
}

func contextAssertions(r *rand.Rand) Question {
	q := excerpt.GenerateAssertionsQuestion(r)
	parts := make([]Part, len(q.Assertions))
	for i, a := range q.Assertions {
		parts[i] = trueFalsePart(a.ID, a.Text, a.Answer, "context."+a.ID)
	}
	return Question{
		Prompt:      "Read the excerpt and decide whether each statement is true.",
		Staff:       excerpt.Overview(),
		Parts:       parts,
		Explanation: q.Explanation(),
	}
}

func contextInstrument(r *rand.Rand) Question {
	q := excerpt.GenerateInstrumentSuitabilityQuestion(r)
	choices := make([]Choice, len(q.Options))
	for i, inst := range q.Options {
		choices[i] = Choice{Text: inst.Name}
		if inst.Name != q.Answer {
			choices[i].Tag = excerpt.TagRangeMissed
		}
	}
	a := excerpt.NewAnalyzer(excerpt.MusicInContext)
	var staff []string
	for bar := q.Start; bar <= q.End; bar++ {
		staff = append(staff, fmt.Sprintf("%d %s | %s", bar, q.Hand, a.Staff(bar, q.Hand)))
	}
	return Question{
		Prompt: fmt.Sprintf("Which instrument could best play the %s part of bars %d-%d at this pitch?",
			handLabel(q.Hand), q.Start, q.End),
		Staff:       staff,
		Parts:       []Part{choicePart("instrument", "Instrument", choices, q.Answer)},
		Explanation: q.Explanation(),
	}
}

func countQuestion(q excerpt.CountQuestion) Question {
	return Question{
		Prompt: q.Prompt,
		Staff:  excerpt.Overview(),
		Parts: []Part{choicePart("count", "Count",
			countChoices(q.Options, q.Answer, excerpt.TagCountOffset), strconv.Itoa(q.Answer))},
		Explanation: q.Explanation(),
	}
}

func contextMediant(r *rand.Rand) Question {
	return countQuestion(excerpt.GenerateMediantCountQuestion(r))
}

func contextIntervals(r *rand.Rand) Question {
	return countQuestion(excerpt.GenerateIntervalCountQuestion(r))
}

func contextStructure(r *rand.Rand) Question {
	q := excerpt.GenerateStructureSymbolsQuestion(r)
	return Question{
		Prompt: "Answer both parts about the structure of the excerpt.",
		Staff:  excerpt.Overview(),
		Parts: []Part{
			choicePart("rhythm",
				fmt.Sprintf("Which bar has the same rhythm as bar %d in the %s?", q.Bar, handLabel(q.Hand)),
				countChoices(q.RhythmOptions, q.RhythmAnswer, excerpt.TagWrongBar), strconv.Itoa(q.RhythmAnswer)),
			choicePart("diminuendo", "In which bar does the music get gradually quieter?",
				countChoices(q.DiminuendoOptions, q.DiminuendoAnswer, excerpt.TagWrongBar), strconv.Itoa(q.DiminuendoAnswer)),
		},
		Explanation: q.Explanation(),
	}
}

func handLabel(h excerpt.Hand) string {
	if h == excerpt.LH {
		return "left hand"
	}
	return "right hand"
}
