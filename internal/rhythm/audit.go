package rhythm

import (
	"math/rand/v2"

	"github.com/abhisek/stave/internal/dice"
)

// CorruptionProbability is how often a rest audit bar carries a mistake.
const CorruptionProbability = 0.55

// RestAuditQuestion shows a bar and asks whether its rests are written correctly.
type RestAuditQuestion struct {
	Meter           Meter
	Tokens          []Token
	NotationCorrect bool
	Explanation     string
}

func tok(start, units int, rest bool) Token {
	t := NewToken(units, rest)
	t.Start = start
	return t
}

type auditTemplate struct {
	correct   []Token
	violation []Token
	reason    string
}

var auditTemplates = map[string]auditTemplate{
	"4/4": {
		correct:   []Token{tok(0, 2, false), tok(2, 2, true), tok(4, 2, false), tok(6, 2, true)},
		violation: []Token{tok(0, 2, false), tok(2, 4, true), tok(6, 2, true)},
		reason: "In 4/4 a half rest must not cross from beat 2 into beat 3 (the middle of the " +
			"bar). Write rests that follow the beats.",
	},
	"3/4": {
		correct:   []Token{tok(0, 2, false), tok(2, 2, true), tok(4, 2, true)},
		violation: []Token{tok(0, 2, false), tok(2, 4, true)},
		reason:    "In 3/4 beats 2 and 3 must not be merged into one half rest; each beat stays visible.",
	},
	"6/8": {
		correct: []Token{tok(0, 1, false), tok(1, 1, true), tok(2, 1, true),
			tok(3, 1, false), tok(4, 1, false), tok(5, 1, false)},
		violation: []Token{tok(0, 1, false), tok(1, 2, true),
			tok(3, 1, false), tok(4, 1, false), tok(5, 1, false)},
		reason: "6/8 is compound and rests must show the 3+3 grouping. A quarter rest covering " +
			"the end of the first beat is the wrong shape.",
	},
}

const auditCorrectReason = "The rests in this bar follow the beat grouping of the time signature."

// GenerateRestAuditQuestion picks a template bar and corrupts it with
// CorruptionProbability.
func GenerateRestAuditQuestion(r *rand.Rand) RestAuditQuestion {
	m := mustMeter(dice.Pick(r, RestAuditIDs))
	tpl := auditTemplates[m.ID]
	if dice.Chance(r, CorruptionProbability) {
		return RestAuditQuestion{
			Meter:           m,
			Tokens:          append([]Token(nil), tpl.violation...),
			NotationCorrect: false,
			Explanation:     tpl.reason,
		}
	}
	return RestAuditQuestion{
		Meter:           m,
		Tokens:          append([]Token(nil), tpl.correct...),
		NotationCorrect: true,
		Explanation:     auditCorrectReason,
	}
}

// CrossesUnit reports whether any rest spans position across its interior.
func CrossesUnit(tokens []Token, position int) bool {
	for _, t := range tokens {
		if t.Rest && t.Start < position && t.End() > position {
			return true
		}
	}
	return false
}
