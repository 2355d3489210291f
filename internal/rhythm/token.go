package rhythm

import (
	"strconv"
	"strings"

	"github.com/abhisek/stave/internal/notation"
)

// Token is a note or rest. Units already include the dot.
type Token struct {
	Start int               `json:"start" msgpack:"s"`
	Units int               `json:"units" msgpack:"u"`
	Code  notation.Duration `json:"code" msgpack:"c"`
	Dots  int               `json:"dots,omitempty" msgpack:"d,omitempty"`
	Rest  bool              `json:"rest,omitempty" msgpack:"r,omitempty"`
}

// NewToken picks the written duration for a length in eighths.
func NewToken(units int, rest bool) Token {
	t := Token{Units: units, Rest: rest}
	switch units {
	case 1:
		t.Code = notation.Eighth
	case 2:
		t.Code = notation.Quarter
	case 3:
		t.Code, t.Dots = notation.Quarter, 1
	case 4:
		t.Code = notation.Half
	case 6:
		t.Code, t.Dots = notation.Half, 1
	case 8:
		t.Code = notation.Whole
	default:
		t.Code = notation.Eighth
	}
	return t
}

// WrittenUnits recomputes the length from the code and dots, a dot adding
// half the base value.
func (t Token) WrittenUnits() int {
	base := t.Code.Sixteenths() / 2
	total, add := base, base
	for i := 0; i < t.Dots; i++ {
		add /= 2
		total += add
	}
	return total
}

// End is the unit where the token stops.
func (t Token) End() int { return t.Start + t.Units }

// Note converts the token for the renderer.
func (t Token) Note() notation.Note {
	return notation.Note{Duration: t.Code, Dots: t.Dots, Rest: t.Rest}
}

// SumUnits adds up written lengths.
func SumUnits(tokens []Token) int {
	total := 0
	for _, t := range tokens {
		total += t.WrittenUnits()
	}
	return total
}

// Signature identifies a token list by its durations, e.g. "2-1".
func Signature(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = strconv.Itoa(t.Units)
	}
	return strings.Join(parts, "-")
}

// tokensFromUnits builds rests (or notes) laid end to end from start.
func tokensFromUnits(units []int, start int, rest bool) []Token {
	out := make([]Token, len(units))
	pos := start
	for i, u := range units {
		out[i] = NewToken(u, rest)
		out[i].Start = pos
		pos += u
	}
	return out
}

// Notes converts tokens for the renderer.
func Notes(tokens []Token) []notation.Note {
	out := make([]notation.Note, len(tokens))
	for i, t := range tokens {
		out[i] = t.Note()
	}
	return out
}

func restName(units int) string {
	switch units {
	case 4:
		return "half rest"
	case 3:
		return "dotted quarter rest"
	case 2:
		return "quarter rest"
	}
	return "eighth rest"
}

// DescribeRests lists rest names, e.g. "quarter rest + eighth rest".
func DescribeRests(tokens []Token) string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = restName(t.Units)
	}
	return strings.Join(names, " + ")
}
