package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		p    Pitch
		want int
	}{
		{Pitch{C, Natural, 4}, 60},
		{Pitch{C, Sharp, 4}, 61},
		{Pitch{D, Flat, 4}, 61},
		{Pitch{B, Sharp, 3}, 60},
		{Pitch{C, Flat, 4}, 59},
		{Pitch{F, DoubleSharp, 5}, 79},
		{Pitch{E, DoubleFlat, 2}, 38},
		{Pitch{A, Natural, 0}, 21},
	}
	for _, tt := range tests {
		if got := tt.p.Abs(); got != tt.want {
			t.Errorf("%s.Abs() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestFromAbsRoundTrip(t *testing.T) {
	for _, l := range Letters {
		for _, a := range Accidentals {
			for o := 0; o <= 7; o++ {
				p := Pitch{l, a, o}
				for _, flats := range []bool{false, true} {
					got := FromAbs(p.Abs(), flats)
					if got.Abs() != p.Abs() {
						t.Fatalf("FromAbs(%d, %v) = %s (abs %d)", p.Abs(), flats, got, got.Abs())
					}
					if got.Accidental == DoubleFlat || got.Accidental == DoubleSharp {
						t.Fatalf("canonical spelling used a double accidental: %s", got)
					}
				}
			}
		}
	}
}

func TestFromAbsSpellingPreference(t *testing.T) {
	assert.Equal(t, "C#4", FromAbs(61, false).String())
	assert.Equal(t, "Db4", FromAbs(61, true).String())
	assert.Equal(t, "B-1", FromAbs(11, false).String())
	assert.Equal(t, "Bb3", FromAbs(58, true).String())
}

func TestTransposeAddsSemitones(t *testing.T) {
	for _, l := range Letters {
		for _, a := range Accidentals {
			p := Pitch{l, a, 4}
			for s := -24; s <= 24; s++ {
				got := Transpose(p, s, s%2 == 0)
				if got.Abs() != p.Abs()+s {
					t.Fatalf("Transpose(%s, %d) = %s", p, s, got)
				}
			}
		}
	}
}

func TestEnharmonicsMutual(t *testing.T) {
	cs := Pitch{C, Sharp, 4}
	db := Pitch{D, Flat, 4}
	require.Equal(t, 61, cs.Abs())
	require.Equal(t, 61, db.Abs())

	assert.Contains(t, Enharmonics(cs), db)
	assert.Contains(t, Enharmonics(db), cs)
	assert.True(t, IsEnharmonic(cs, db))
}

func TestEnharmonicsExcludesOwnSpelling(t *testing.T) {
	p := Pitch{G, Sharp, 4}
	enh := Enharmonics(p)
	names := map[string]bool{}
	for _, e := range enh {
		assert.Equal(t, p.Abs(), e.Abs())
		assert.NotEqual(t, p.Name(), e.Name())
		assert.False(t, names[e.Name()], "duplicate spelling %s", e.Name())
		names[e.Name()] = true
	}
	assert.Equal(t, map[string]bool{"Ab": true}, names)
}

func TestEnharmonicsAcrossOctave(t *testing.T) {
	enh := Enharmonics(Pitch{C, Natural, 4})
	var found bool
	for _, e := range enh {
		if e.Name() == "B#" {
			found = true
			assert.Equal(t, 3, e.Octave)
		}
	}
	assert.True(t, found, "B#3 should be an enharmonic of C4")
}

func TestSpell(t *testing.T) {
	tests := []struct {
		letter Letter
		value  int
		want   string
	}{
		{B, 72, "B#4"},
		{C, 71, "Cb5"},
		{E, 65, "E#4"},
		{F, 64, "Fb4"},
		{G, 69, "Gx4"},
		{D, 60, "Dbb4"},
		{A, 69, "A4"},
	}
	for _, tt := range tests {
		got := Spell(tt.letter, tt.value)
		if got.String() != tt.want {
			t.Errorf("Spell(%s, %d) = %s, want %s", tt.letter, tt.value, got, tt.want)
		}
		if got.Abs() != tt.value {
			t.Errorf("Spell(%s, %d) has abs %d", tt.letter, tt.value, got.Abs())
		}
	}
}

func TestParsePitch(t *testing.T) {
	tests := []struct {
		in   string
		want Pitch
	}{
		{"C4", Pitch{C, Natural, 4}},
		{"c#4", Pitch{C, Sharp, 4}},
		{"Bb3", Pitch{B, Flat, 3}},
		{"bb3", Pitch{B, Flat, 3}},
		{"Ebb2", Pitch{E, DoubleFlat, 2}},
		{"Fx5", Pitch{F, DoubleSharp, 5}},
		{"F##5", Pitch{F, DoubleSharp, 5}},
		{" G♯4 ", Pitch{G, Sharp, 4}},
		{"Ａ♭４", Pitch{A, Flat, 4}},
		{"C-1", Pitch{C, Natural, -1}},
	}
	for _, tt := range tests {
		got, err := ParsePitch(tt.in)
		if err != nil {
			t.Errorf("ParsePitch(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePitch(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParsePitchRejects(t *testing.T) {
	for _, in := range []string{"", "H4", "C", "C#", "Cq4", "4C", "C#4x", "C+4"} {
		_, err := ParsePitch(in)
		if !errors.Is(err, ErrInvalidPitch) {
			t.Errorf("ParsePitch(%q) err = %v, want ErrInvalidPitch", in, err)
		}
	}
}

func TestParseNameOrDefault(t *testing.T) {
	p, ok := ParseNameOrDefault("Eb", 5)
	assert.True(t, ok)
	assert.Equal(t, "Eb5", p.String())

	p, ok = ParseNameOrDefault("not a note", 5)
	assert.False(t, ok)
	assert.Equal(t, DefaultPitch, p)
	assert.Equal(t, "C4", p.String())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"F# minor", "F# minor"},
		{"Bb major", "Bb major"},
		{"C#m", "C# minor"},
		{"Eb", "Eb major"},
		{"a min", "A minor"},
	}
	for _, tt := range tests {
		k, err := ParseKey(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, k.String())
	}

	_, err := ParseKey("H dorian")
	assert.Error(t, err)
}

func TestOctaveEquivalent(t *testing.T) {
	assert.True(t, OctaveEquivalent(Pitch{C, Natural, 4}, Pitch{B, Sharp, 4}))
	assert.True(t, OctaveEquivalent(Pitch{C, Natural, 4}, Pitch{C, Natural, 2}))
	assert.False(t, OctaveEquivalent(Pitch{C, Natural, 4}, Pitch{C, Sharp, 4}))
}
