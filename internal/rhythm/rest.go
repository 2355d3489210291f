package rhythm

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/stave/internal/dice"
)

// CalculateCorrectRestNotation returns the rests that fill remaining eighths
// starting at unit start. Rests never cross the middle of a 4/4 bar or a
// compound beat; each span is filled greedily from the longest legal rest.
// Unknown signatures return nil.
func CalculateCorrectRestNotation(signature string, remaining, start int) []Token {
	m, ok := LookupMeter(signature)
	if !ok || remaining <= 0 {
		return nil
	}
	end := start + remaining
	cuts := []int{start, end}

	if m.ID == "4/4" && start < 4 && end > 4 {
		cuts = append(cuts, 4)
	}
	if m.Family == Compound {
		for _, b := range m.Boundaries() {
			if b > start && b < end {
				cuts = append(cuts, b)
			}
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var units []int
	for i := 0; i+1 < len(cuts); i++ {
		units = append(units, fillSpan(cuts[i+1]-cuts[i], m.Family)...)
	}
	return tokensFromUnits(units, start, true)
}

// fillSpan prefers a whole compound beat (3) over 2+1.
func fillSpan(length int, family Family) []int {
	preferred := []int{4, 2, 1}
	if family == Compound {
		preferred = []int{3, 2, 1}
	}
	var out []int
	for rem := length; rem > 0; {
		pick := 1
		for _, p := range preferred {
			if p <= rem {
				pick = p
				break
			}
		}
		out = append(out, pick)
		rem -= pick
	}
	return out
}

// RestOption is one candidate filling of the gap.
type RestOption struct {
	ID      string
	Rests   []Token
	Label   string
	Correct bool
	Tag     string
}

// RestQuestion asks how to complete a bar with rests.
type RestQuestion struct {
	Meter           Meter
	Given           []Token
	Start           int
	Missing         int
	Options         []RestOption
	CorrectOptionID string
	Explanation     string
}

// Distractor tags for rest completion.
const (
	RestTagMerged     = "rest.merged"
	RestTagEighths    = "rest.all-eighths"
	RestTagGrouping   = "rest.ignores-grouping"
	RestTagDotted     = "rest.dotted-in-simple"
	RestTagReordered  = "rest.reordered"
	RestTagLeadEighth = "rest.leading-eighth"
)

// GenerateRestCompletionQuestion picks a meter and a gap of at least two
// eighths at the end of the bar.
func GenerateRestCompletionQuestion(r *rand.Rand) RestQuestion {
	m := mustMeter(dice.Pick(r, RestIDs))
	total := m.TotalUnits()
	start := dice.Between(r, 1, total-2)
	missing := total - start

	correct := CalculateCorrectRestNotation(m.ID, missing, start)
	options := []RestOption{{ID: "correct", Rests: correct, Label: DescribeRests(correct), Correct: true}}
	for i, d := range restDistractors(m, start, missing, correct) {
		options = append(options, RestOption{
			ID:    fmt.Sprintf("d-%d", i),
			Rests: d.rests,
			Label: DescribeRests(d.rests),
			Tag:   d.tag,
		})
	}

	q := RestQuestion{
		Meter:           m,
		Given:           tokensFromUnits(fillSpan(start, Simple), 0, false),
		Start:           start,
		Missing:         missing,
		Options:         dice.Shuffle(r, options),
		CorrectOptionID: "correct",
	}
	q.Explanation = restExplanation(m, correct)
	return q
}

type restCandidate struct {
	rests []Token
	tag   string
}

// restDistractors returns up to three fillings with the right total length but
// a different duration signature from the correct one and from each other.
func restDistractors(m Meter, start, missing int, correct []Token) []restCandidate {
	var cands []restCandidate
	add := func(units []int, tag string) {
		cands = append(cands, restCandidate{rests: tokensFromUnits(units, start, true), tag: tag})
	}

	add(fillSpan(missing, Simple), RestTagMerged)

	eighths := make([]int, missing)
	for i := range eighths {
		eighths[i] = 1
	}
	add(eighths, RestTagEighths)

	if m.Family == Compound {
		var quarters []int
		for rem := missing; rem > 0; {
			take := min(rem, 2)
			quarters = append(quarters, take)
			rem -= take
		}
		add(quarters, RestTagGrouping)
	} else if missing >= 3 {
		add(append([]int{3}, fillSpan(missing-3, Simple)...), RestTagDotted)
	}

	reversed := make([]int, len(correct))
	for i, t := range correct {
		reversed[len(correct)-1-i] = t.Units
	}
	add(reversed, RestTagReordered)
	add(append([]int{1}, fillSpan(missing-1, Simple)...), RestTagLeadEighth)

	seen := map[string]bool{Signature(correct): true}
	var out []restCandidate
	for _, c := range cands {
		sig := Signature(c.rests)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, c)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func restExplanation(m Meter, correct []Token) string {
	combo := DescribeRests(correct)
	switch {
	case m.ID == "4/4":
		return fmt.Sprintf("The correct answer is %s. In 4/4 a rest must not cross the middle of "+
			"the bar between beats 2 and 3, so split at the midpoint first.", combo)
	case m.Family == Compound:
		return fmt.Sprintf("The correct answer is %s. %s is compound: rests must show each "+
			"dotted-quarter beat of three eighths.", combo, m.ID)
	}
	return fmt.Sprintf("The correct answer is %s. Rests must show each beat clearly; a "+
		"longer rest must not hide a beat.", combo)
}
