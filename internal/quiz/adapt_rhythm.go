package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/rhythm"
)

// Rhythm distractor tags not owned by the rhythm package.
const (
	TagMeterFamily = "meter.family"
	TagMeterCount  = "meter.count"
	TagRestAudit   = "rest.crosses-beat"
	TagRestMissed  = "rest.false-alarm"
)

func timeSignature(r *rand.Rand) Question {
	q := rhythm.GenerateTimeSignatureQuestion(r)
	choices := make([]Choice, len(q.Choices))
	for i, id := range q.Choices {
		choices[i] = Choice{Text: id}
		if id == q.Answer {
			continue
		}
		if m, ok := rhythm.LookupMeter(id); ok && m.Family != q.Bar.Meter.Family {
			choices[i].Tag = TagMeterFamily
		} else {
			choices[i].Tag = TagMeterCount
		}
	}
	return Question{
		Prompt:      "Which time signature fits this bar?",
		Staff:       []string{notation.RhythmLine(rhythm.Notes(q.Bar.Tokens))},
		Parts:       []Part{choicePart("signature", "Time signature", choices, q.Answer)},
		Explanation: q.Explanation,
	}
}

func beamingPart(q rhythm.BeamingQuestion) Part {
	choices := make([]Choice, len(q.Options))
	answer := ""
	for i, o := range q.Options {
		choices[i] = Choice{Text: o.Label + ": " + notation.BeamLine(q.Count, o.Groups)}
		if o.ID == q.CorrectOptionID {
			answer = choices[i].Text
		} else {
			choices[i].Tag = "beaming." + string(o.Trap)
		}
	}
	return choicePart("beaming", "Beaming", choices, answer)
}

func beaming(r *rand.Rand) Question {
	q := rhythm.GenerateBeamingQuestion(r)
	return Question{
		Prompt:      fmt.Sprintf("%d eighth notes fill a bar of %s. Which beaming is correct?", q.Count, q.Meter.ID),
		Parts:       []Part{beamingPart(q)},
		Explanation: q.Explanation,
	}
}

func compoundBeaming(r *rand.Rand) Question {
	q := rhythm.GenerateCompoundBeamingQuestion(r)
	return Question{
		Prompt:      fmt.Sprintf("%d eighth notes fill a bar of %s. Which beaming shows the beats?", q.Count, q.Meter.ID),
		Parts:       []Part{beamingPart(q)},
		Explanation: q.Explanation,
	}
}

func restCompletion(r *rand.Rand) Question {
	q := rhythm.GenerateRestCompletionQuestion(r)
	choices := make([]Choice, len(q.Options))
	answer := ""
	for i, o := range q.Options {
		choices[i] = Choice{Text: o.Label, Tag: o.Tag}
		if o.ID == q.CorrectOptionID {
			answer, choices[i].Tag = o.Label, ""
		}
	}
	staff := fmt.Sprintf("%s | %s ? (%d eighths missing)",
		q.Meter.ID, notation.RhythmLine(rhythm.Notes(q.Given)), q.Missing)
	return Question{
		Prompt:      fmt.Sprintf("Complete this bar of %s with rests.", q.Meter.ID),
		Staff:       []string{staff},
		Parts:       []Part{choicePart("rests", "Rests", choices, answer)},
		Explanation: q.Explanation,
	}
}

func restAudit(r *rand.Rand) Question {
	q := rhythm.GenerateRestAuditQuestion(r)
	tag := TagRestAudit
	if q.NotationCorrect {
		tag = TagRestMissed
	}
	return Question{
		Prompt: fmt.Sprintf("This bar is in %s.", q.Meter.ID),
		Staff:  []string{q.Meter.ID + " | " + notation.RhythmLine(rhythm.Notes(q.Tokens))},
		Parts: []Part{trueFalsePart("correct", "The rests are written correctly.",
			q.NotationCorrect, tag)},
		Explanation: q.Explanation,
	}
}
