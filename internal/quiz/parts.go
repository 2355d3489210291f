package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
)

func choicePart(label, prompt string, choices []Choice, answer string) Part {
	return Part{Label: label, Prompt: prompt, Format: FormatMultipleChoice, Choices: choices, Answer: answer}
}

// trueFalsePart tags the wrong choice with tag.
func trueFalsePart(label, prompt string, answer bool, tag string) Part {
	yes, no := Choice{Text: "True"}, Choice{Text: "False"}
	if answer {
		no.Tag = tag
	} else {
		yes.Tag = tag
	}
	return Part{
		Label:   label,
		Prompt:  prompt,
		Format:  FormatTrueFalse,
		Choices: []Choice{yes, no},
		Answer:  boolText(answer),
	}
}

func pitchPart(label, prompt string, answer theory.Pitch) Part {
	return Part{Label: label, Prompt: prompt, Format: FormatPitch, Answer: answer.String()}
}

// stringChoices tags every choice except answer.
func stringChoices[S ~string](items []S, answer S, tag string) []Choice {
	out := make([]Choice, len(items))
	for i, it := range items {
		out[i] = Choice{Text: string(it)}
		if it != answer {
			out[i].Tag = tag
		}
	}
	return out
}

func countChoices(opts []int, answer int, tag string) []Choice {
	out := make([]Choice, len(opts))
	for i, n := range opts {
		out[i] = Choice{Text: strconv.Itoa(n)}
		if n != answer {
			out[i].Tag = tag
		}
	}
	return out
}

// placement describes where p sits on a staff without naming it, e.g.
// "space 3 (#)".
func placement(c notation.Clef, p theory.Pitch) string {
	s := notation.DescribePosition(notation.StaffPosition(c, p))
	if p.Accidental != theory.Natural {
		s += " (" + p.Accidental.String() + ")"
	}
	return s
}

// clefStaff renders notes by staff position.
func clefStaff(c notation.Clef, notes []theory.Pitch) string {
	parts := make([]string, len(notes))
	for i, p := range notes {
		parts[i] = placement(c, p)
	}
	return fmt.Sprintf("%s clef | %s", c, strings.Join(parts, " | "))
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
