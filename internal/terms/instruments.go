package terms

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/stave/internal/dice"
)

// Family is an orchestral section.
type Family string

const (
	Woodwind   Family = "Woodwind"
	Brass      Family = "Brass"
	Strings    Family = "Strings"
	Percussion Family = "Percussion"
	Voice      Family = "Voice"
)

// Reed kinds.
type Reed string

const (
	NoReed     Reed = "None"
	SingleReed Reed = "Single"
	DoubleReed Reed = "Double"
)

// Range is a coarse register, from "very-low" to "very-high".
type Range string

// Ranges in ascending order.
var Ranges = []Range{"very-low", "low", "mid-low", "mid", "mid-high", "high", "very-high"}

// Weight orders ranges: 0 for very-low up to 6 for very-high.
func (r Range) Weight() int {
	for i, x := range Ranges {
		if x == r {
			return i
		}
	}
	return -1
}

// Instrument is a fact sheet entry.
type Instrument struct {
	ID            string
	Name          string
	Family        Family
	Reed          Reed
	DefinitePitch bool
	Range         Range
}

// Instruments is the instrument database.
var Instruments = []Instrument{
	{"flute", "Flute", Woodwind, NoReed, true, "high"},
	{"oboe", "Oboe", Woodwind, DoubleReed, true, "mid-high"},
	{"clarinet", "Clarinet", Woodwind, SingleReed, true, "mid"},
	{"bassoon", "Bassoon", Woodwind, DoubleReed, true, "low"},
	{"trumpet", "Trumpet", Brass, NoReed, true, "high"},
	{"horn", "French Horn", Brass, NoReed, true, "mid-low"},
	{"trombone", "Trombone", Brass, NoReed, true, "low"},
	{"violin", "Violin", Strings, NoReed, true, "high"},
	{"cello", "Cello", Strings, NoReed, true, "mid-low"},
	{"double-bass", "Double Bass", Strings, NoReed, true, "very-low"},
	{"cymbals", "Cymbals", Percussion, NoReed, false, "mid"},
	{"snare", "Side Drum", Percussion, NoReed, false, "mid"},
	{"soprano", "Soprano", Voice, NoReed, true, "very-high"},
	{"mezzo", "Mezzo-soprano", Voice, NoReed, true, "high"},
}

// LookupInstrument finds an instrument by ID or display name.
func LookupInstrument(key string) (Instrument, bool) {
	for _, i := range Instruments {
		if i.ID == key || strings.EqualFold(i.Name, key) {
			return i, true
		}
	}
	return Instrument{}, false
}

func mustInstrument(key string) Instrument {
	i, ok := LookupInstrument(key)
	if !ok {
		panic("terms: no instrument " + key)
	}
	return i
}

var statementFamilies = []Family{Woodwind, Brass, Strings, Percussion}

// Statement is a true/false claim about instruments.
type Statement struct {
	ID     string
	Text   string
	Answer bool
}

// InstrumentQuestion holds five statements.
type InstrumentQuestion struct {
	Statements []Statement
}

// GenerateInstrumentQuestion draws one statement each about family, relative
// pitch, reed, definite pitch and voice range.
func GenerateInstrumentQuestion(r *rand.Rand) InstrumentQuestion {
	var st []Statement

	a := dice.Pick(r, Instruments)
	fam := dice.Pick(r, statementFamilies)
	st = append(st, Statement{
		ID:     "family",
		Text:   fmt.Sprintf("The %s is a %s instrument.", a.Name, strings.ToLower(string(fam))),
		Answer: a.Family == fam,
	})

	i1 := dice.Pick(r, Instruments)
	var rest []Instrument
	for _, i := range Instruments {
		if i.ID != i1.ID {
			rest = append(rest, i)
		}
	}
	i2 := dice.Pick(r, rest)
	st = append(st, Statement{
		ID:     "pitch",
		Text:   fmt.Sprintf("The %s usually plays higher than the %s.", i1.Name, i2.Name),
		Answer: i1.Range.Weight() > i2.Range.Weight(),
	})

	reedy := dice.Pick(r, Instruments)
	reed := dice.Pick(r, []Reed{SingleReed, DoubleReed})
	st = append(st, Statement{
		ID:     "mechanics",
		Text:   fmt.Sprintf("The %s uses a %s reed.", reedy.Name, strings.ToLower(string(reed))),
		Answer: reedy.Reed == reed,
	})

	var perc []Instrument
	for _, i := range Instruments {
		if i.Family == Percussion {
			perc = append(perc, i)
		}
	}
	p := dice.Pick(r, perc)
	st = append(st, Statement{
		ID:     "definite",
		Text:   fmt.Sprintf("The %s produces sounds of definite pitch.", p.Name),
		Answer: p.DefinitePitch,
	})

	v1, v2 := mustInstrument("mezzo"), mustInstrument("soprano")
	st = append(st, Statement{
		ID:     "voice",
		Text:   fmt.Sprintf("A %s has a lower range than a %s.", strings.ToLower(v1.Name), strings.ToLower(v2.Name)),
		Answer: v1.Range.Weight() < v2.Range.Weight(),
	})
	return InstrumentQuestion{Statements: st}
}

// Explanation marks each statement true or false.
func (q InstrumentQuestion) Explanation() string {
	parts := make([]string, len(q.Statements))
	for i, s := range q.Statements {
		verdict := "false"
		if s.Answer {
			verdict = "true"
		}
		parts[i] = fmt.Sprintf("%q is %s.", s.Text, verdict)
	}
	return strings.Join(parts, " ")
}
