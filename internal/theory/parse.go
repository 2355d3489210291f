package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ErrInvalidPitch is returned for text that does not spell a pitch.
var ErrInvalidPitch = errors.New("invalid pitch")

// DefaultPitch is substituted by ParseNameOrDefault when its input does not parse.
var DefaultPitch = Pitch{Letter: C, Octave: 4}

var symbolReplacer = strings.NewReplacer(
	"♯", "#", "♭", "b", "𝄪", "x", "𝄫", "bb", "♮", "",
)

// Normalize folds full-width characters and musical symbols into the ASCII
// spelling used by ParsePitch.
func Normalize(s string) string {
	return symbolReplacer.Replace(width.Narrow.String(strings.TrimSpace(s)))
}

// ParsePitch parses text such as "C#4", "Bb3", "Fx5" or "Ebb2".
func ParsePitch(s string) (Pitch, error) {
	norm := Normalize(s)
	l, a, rest, err := parseSpelling(norm)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || rest == "" || strings.HasPrefix(rest, "+") {
		return Pitch{}, fmt.Errorf("%w: %q: missing octave", ErrInvalidPitch, s)
	}
	return Pitch{Letter: l, Accidental: a, Octave: octave}, nil
}

// ParseName parses a spelling without octave such as "F#" or "Bb".
func ParseName(s string) (Letter, Accidental, error) {
	l, a, rest, err := parseSpelling(Normalize(s))
	if err != nil || rest != "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	return l, a, nil
}

// ParseNameOrDefault spells name at octave. On bad input it returns
// DefaultPitch and ok=false.
func ParseNameOrDefault(name string, octave int) (p Pitch, ok bool) {
	l, a, err := ParseName(name)
	if err != nil {
		return DefaultPitch, false
	}
	return Pitch{Letter: l, Accidental: a, Octave: octave}, true
}

// MustName is ParseName for literal tables; it panics on a malformed literal.
func MustName(name string, octave int) Pitch {
	l, a, err := ParseName(name)
	if err != nil {
		panic(err)
	}
	return Pitch{Letter: l, Accidental: a, Octave: octave}
}

func parseSpelling(s string) (Letter, Accidental, string, error) {
	if s == "" {
		return 0, 0, "", ErrInvalidPitch
	}
	idx := strings.IndexByte("CDEFGAB", upper(s[0]))
	if idx < 0 {
		return 0, 0, "", ErrInvalidPitch
	}
	rest := s[1:]
	acc := Natural
	switch {
	case strings.HasPrefix(rest, "bb"):
		acc, rest = DoubleFlat, rest[2:]
	case strings.HasPrefix(rest, "##"):
		acc, rest = DoubleSharp, rest[2:]
	case strings.HasPrefix(rest, "b"):
		acc, rest = Flat, rest[1:]
	case strings.HasPrefix(rest, "#"):
		acc, rest = Sharp, rest[1:]
	case strings.HasPrefix(rest, "x"):
		acc, rest = DoubleSharp, rest[1:]
	}
	return Letter(idx), acc, rest, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
