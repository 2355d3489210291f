package rhythm

import (
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
)

// Trap names the notation mistake a wrong beaming represents.
type Trap string

const (
	TrapNone         Trap = ""
	TrapSyncopation  Trap = "syncopation"
	TrapCompound     Trap = "compound"
	TrapIrregular    Trap = "irregular"
	TrapBridge       Trap = "bridge"
	TrapOverGrouping Trap = "over-grouping"
)

// BeamingOption is one candidate beaming of an all-eighths bar.
type BeamingOption struct {
	ID      string
	Label   string
	Groups  [][]int
	Correct bool
	Trap    Trap
}

// BeamingQuestion asks which beaming suits the meter.
type BeamingQuestion struct {
	Meter           Meter
	Count           int
	Options         []BeamingOption
	CorrectOptionID string
	Explanation     string
}

// Crossing a strong beat.
var syncopationTraps = map[string][]int{
	"4/4": {4, 4},
	"3/4": {4, 2},
	"6/8": {4, 2},
	"5/8": {3, 2},
	"7/8": {2, 3, 2},
}

// Compound grouping in simple time or the reverse.
var compoundTraps = map[string][]int{
	"3/4": {3, 3},
	"6/8": {2, 2, 2},
	"4/4": {3, 3, 2},
	"5/8": {1, 2, 2},
	"7/8": {3, 2, 2},
}

// Groups collapsed so the beats disappear.
var irregularTraps = map[string][]int{
	"7/8": {7},
	"5/8": {5},
	"4/4": {2, 4, 2},
	"3/4": {6},
	"6/8": {6},
}

var beamingExplanations = map[string]string{
	"4/4": "Beam each beat (2+2+2+2). Never beam beat 2 into beat 3 across the middle of the " +
		"bar; it hides the bar's accents.",
	"3/4": "3/4 shows three beats, 2+2+2. Beaming 3+3 makes it look like 6/8.",
	"6/8": "6/8 is compound: beam 3+3 for two dotted-quarter beats. 2+2+2 reads as simple time.",
	"5/8": "5/8 is irregular and grouped 2+3 here. Wrong beams flip or hide the accent.",
	"7/8": "7/8 is irregular and must show 2+2+3. One long beam loses every clue to the meter.",
}

// GenerateBeamingQuestion builds a correct beaming and three named traps.
func GenerateBeamingQuestion(r *rand.Rand) BeamingQuestion {
	m := mustMeter(dice.Pick(r, BeamingIDs))
	options := []BeamingOption{
		{ID: "correct", Groups: groupsToIndexes(m.Groups), Correct: true},
		{ID: "sync", Groups: groupsToIndexes(syncopationTraps[m.ID]), Trap: TrapSyncopation},
		{ID: "compound", Groups: groupsToIndexes(compoundTraps[m.ID]), Trap: TrapCompound},
		{ID: "irregular", Groups: groupsToIndexes(irregularTraps[m.ID]), Trap: TrapIrregular},
	}
	return BeamingQuestion{
		Meter:           m,
		Count:           m.TotalUnits(),
		Options:         relabel(dice.Shuffle(r, options)),
		CorrectOptionID: "correct",
		Explanation:     beamingExplanations[m.ID],
	}
}

func relabel(options []BeamingOption) []BeamingOption {
	for i := range options {
		options[i].Label = string(rune('A' + i))
	}
	return options
}

// GenerateCompoundBeamingQuestion covers 9/8, 12/8, 9/4 and 5/8 with bridge
// and over-grouping traps.
func GenerateCompoundBeamingQuestion(r *rand.Rand) BeamingQuestion {
	m := mustMeter(dice.Pick(r, CompoundBeamingIDs))
	options := []BeamingOption{
		{ID: "correct", Groups: groupsToIndexes(m.Groups), Correct: true},
		{ID: "bridge", Groups: groupsToIndexes(bridgeTrap(m)), Trap: TrapBridge},
		{ID: "over", Groups: groupsToIndexes(overGroupingTrap(m)), Trap: TrapOverGrouping},
	}
	return BeamingQuestion{
		Meter:           m,
		Count:           m.TotalUnits(),
		Options:         relabel(dice.Shuffle(r, options)),
		CorrectOptionID: "correct",
		Explanation:     compoundBeamingExplanation(m.ID),
	}
}

// bridgeTrap moves one note of beat 2 onto the beam of beat 1.
func bridgeTrap(m Meter) []int {
	if len(m.Groups) < 2 {
		return []int{m.TotalUnits()}
	}
	out := []int{m.Groups[0] + 1}
	if second := m.Groups[1] - 1; second > 0 {
		out = append(out, second)
	}
	return append(out, m.Groups[2:]...)
}

func overGroupingTrap(m Meter) []int {
	switch m.ID {
	case "5/8":
		return []int{5}
	case "9/4":
		return []int{9, 9}
	}
	return []int{m.TotalUnits()}
}

func compoundBeamingExplanation(id string) string {
	switch id {
	case "9/4":
		return "9/4 has three dotted-half beats (3+3+3 big beats of six eighths). A beam across " +
			"any of them hides the accent."
	case "9/8":
		return "9/8 is compound, 3+3+3. Joining the end of beat 1 to the start of beat 2 breaks " +
			"the big-beat feel."
	case "12/8":
		return "12/8 groups as 3+3+3+3. One long beam makes the beats impossible to read."
	}
	return "5/8 is irregular, grouped 2+3 here. Beams must follow the grouping without merging it."
}
