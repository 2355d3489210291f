// Package intervals computes interval number and quality between spelled
// pitches, builds notes at a given interval, and generates interval questions.
package intervals

import (
	"fmt"

	"github.com/abhisek/stave/internal/theory"
)

// Quality of an interval.
type Quality string

const (
	Perfect    Quality = "perfect"
	Major      Quality = "major"
	Minor      Quality = "minor"
	Augmented  Quality = "augmented"
	Diminished Quality = "diminished"
)

// Qualities lists every quality in display order.
var Qualities = []Quality{Perfect, Major, Minor, Augmented, Diminished}

// Result describes the interval between two pitches.
type Result struct {
	Number    int     `json:"number"`
	Simple    int     `json:"simple"`
	Quality   Quality `json:"quality"`
	Compound  bool    `json:"compound"`
	Semitones int     `json:"semitones"`
}

// IsPerfectClass reports whether a number takes perfect/augmented/diminished
// rather than major/minor: unisons, fourths, fifths and their compounds.
func IsPerfectClass(number int) bool {
	switch simplify(number) {
	case 1, 4, 5:
		return true
	}
	return false
}

// ValidQualities lists the qualities a number can carry.
func ValidQualities(number int) []Quality {
	if IsPerfectClass(number) {
		return []Quality{Perfect, Augmented, Diminished}
	}
	return []Quality{Major, Minor, Augmented, Diminished}
}

func simplify(number int) int {
	return ((number-1)%7+7)%7 + 1
}

var baseSemitones = [8]int{0, 0, 2, 4, 5, 7, 9, 11}

// Semitones returns the size of an interval. Qualities that do not fit the
// number's class fall back to the perfect or major size.
func Semitones(number int, q Quality) int {
	base := baseSemitones[simplify(number)] + (number-1)/7*12
	if IsPerfectClass(number) {
		switch q {
		case Augmented:
			return base + 1
		case Diminished:
			return base - 1
		}
		return base
	}
	switch q {
	case Minor:
		return base - 1
	case Augmented:
		return base + 1
	case Diminished:
		return base - 2
	}
	return base
}

// Calculate orders a and b by absolute value and names the interval between
// them. The number comes from letter distance; the quality compares the
// semitone distance with the perfect or major size of that number.
func Calculate(a, b theory.Pitch) Result {
	low, high := a, b
	if b.Abs() < a.Abs() || (b.Abs() == a.Abs() && b.Diatonic() < a.Diatonic()) {
		low, high = b, a
	}
	number := high.Diatonic() - low.Diatonic() + 1
	semis := high.Abs() - low.Abs()
	res := Result{
		Number:    number,
		Simple:    simplify(number),
		Compound:  number > 8,
		Semitones: semis,
	}

	if IsPerfectClass(number) {
		diff := semis - Semitones(number, Perfect)
		switch {
		case diff == 0:
			res.Quality = Perfect
		case diff > 0:
			res.Quality = Augmented
		default:
			res.Quality = Diminished
		}
		return res
	}
	diff := semis - Semitones(number, Major)
	switch {
	case diff == 0:
		res.Quality = Major
	case diff == -1:
		res.Quality = Minor
	case diff > 0:
		res.Quality = Augmented
	default:
		res.Quality = Diminished
	}
	return res
}

// BuildAbove spells the note number letters above base with quality q. The
// accidental is clamped to a double sharp or double flat.
func BuildAbove(base theory.Pitch, number int, q Quality) theory.Pitch {
	steps := number - 1
	idx := int(base.Letter) + steps
	target := theory.Pitch{Letter: theory.Letter(idx % 7), Octave: base.Octave + idx/7}
	natural := target.Abs() - base.Abs()
	offset := Semitones(number, q) - natural
	target.Accidental = theory.Accidental(max(-2, min(2, offset)))
	return target
}

// Ordinal renders 1 as "1st", 2 as "2nd", 12 as "12th".
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Label renders a result, e.g. "major 3rd" or "compound perfect 12th".
func Label(r Result) string {
	s := fmt.Sprintf("%s %s", r.Quality, Ordinal(r.Number))
	if r.Compound {
		return "compound " + s
	}
	return s
}
