package theory

import (
	"fmt"
	"strings"
)

// Mode is major or minor.
type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// Key is a tonic spelling plus mode, e.g. F# minor.
type Key struct {
	Letter     Letter
	Accidental Accidental
	Mode       Mode
}

// ParseKey accepts "F# minor", "Bb major", "C#m" and a bare tonic (major).
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(Normalize(s))
	if len(fields) == 0 || len(fields) > 2 {
		return Key{}, fmt.Errorf("invalid key %q", s)
	}
	tonic, mode := fields[0], Major
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "major", "maj":
		case "minor", "min":
			mode = Minor
		default:
			return Key{}, fmt.Errorf("invalid key %q: unknown mode %q", s, fields[1])
		}
	} else if len(tonic) > 1 && strings.HasSuffix(tonic, "m") {
		tonic, mode = strings.TrimSuffix(tonic, "m"), Minor
	}
	l, a, err := ParseName(tonic)
	if err != nil {
		return Key{}, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return Key{Letter: l, Accidental: a, Mode: mode}, nil
}

// MustKey is ParseKey for literal tables.
func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Tonic returns the tonic at octave.
func (k Key) Tonic(octave int) Pitch {
	return Pitch{Letter: k.Letter, Accidental: k.Accidental, Octave: octave}
}

// TonicName is the tonic spelling, e.g. "F#".
func (k Key) TonicName() string {
	return k.Letter.String() + k.Accidental.String()
}

func (k Key) String() string {
	return k.TonicName() + " " + k.Mode.String()
}
