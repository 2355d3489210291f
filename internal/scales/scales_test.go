package scales

import (
	"testing"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/notation"
	"github.com/abhisek/stave/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(ps []theory.Pitch) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name()
	}
	return out
}

func TestScaleSpelling(t *testing.T) {
	tests := []struct {
		tonic string
		typ   Type
		want  []string
	}{
		{"C", Major, []string{"C", "D", "E", "F", "G", "A", "B", "C"}},
		{"Eb", Major, []string{"Eb", "F", "G", "Ab", "Bb", "C", "D", "Eb"}},
		{"A", HarmonicMinor, []string{"A", "B", "C", "D", "E", "F", "G#", "A"}},
		{"F#", HarmonicMinor, []string{"F#", "G#", "A", "B", "C#", "D", "E#", "F#"}},
		{"C#", MelodicMinor, []string{"C#", "D#", "E", "F#", "G#", "A#", "B#", "C#"}},
		{"Eb", HarmonicMinor, []string{"Eb", "F", "Gb", "Ab", "Bb", "Cb", "D", "Eb"}},
	}
	for _, tt := range tests {
		got := Scale(theory.MustName(tt.tonic, 4), tt.typ)
		if !assert.Equal(t, tt.want, names(got), "%s %s", tt.tonic, tt.typ) {
			continue
		}
		root := got[0].Abs()
		for i, p := range got {
			if p.Abs()-root != templates[tt.typ][i] {
				t.Errorf("%s %s degree %d: offset %d, want %d", tt.tonic, tt.typ, i+1, p.Abs()-root, templates[tt.typ][i])
			}
		}
	}
}

func TestMelodicMinorDescending(t *testing.T) {
	got := MelodicMinorDescending(theory.MustName("A", 4))
	assert.Equal(t, []string{"A", "G", "F", "E", "D", "C", "B", "A"}, names(got))
	assert.Equal(t, 81, got[0].Abs())
	assert.Equal(t, 69, got[7].Abs())
}

func TestDegreeNumber(t *testing.T) {
	tests := map[string]int{
		"Tonic": 1, "supertonic": 2, "Mediant": 3, "subdominant": 4, "Dominant": 5,
		"submediant": 6, "Leading note": 7, "leading": 7, "cadenza": 1,
	}
	for term, want := range tests {
		if got := DegreeNumber(term); got != want {
			t.Errorf("DegreeNumber(%q) = %d, want %d", term, got, want)
		}
	}
}

func TestDegreeNoteClamps(t *testing.T) {
	c := theory.MustName("C", 4)
	assert.Equal(t, "C4", DegreeNote(c, Major, 0).String())
	assert.Equal(t, "C5", DegreeNote(c, Major, 12).String())
	assert.Equal(t, "G#4", DegreeNote(theory.MustName("A", 3), HarmonicMinor, 7).String())
}

func TestKeySignature(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"C major", 0}, {"G major", 1}, {"F# major", 6}, {"Cb major", -7}, {"Bb major", -2},
		{"A minor", 0}, {"E minor", 1}, {"C# minor", 4}, {"D minor", -1}, {"Eb minor", -6},
	}
	for _, tt := range tests {
		got, ok := KeySignature(theory.MustKey(tt.key))
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
	_, ok := KeySignature(theory.MustKey("Fb major"))
	assert.False(t, ok)
}

func TestSignatureAccidentals(t *testing.T) {
	assert.Equal(t, []string{"F#", "C#", "G#"}, names(SignatureAccidentals(3)))
	assert.Equal(t, []string{"Bb", "Eb"}, names(SignatureAccidentals(-2)))
	assert.Empty(t, SignatureAccidentals(0))
	assert.Equal(t, []int{8, 5}, SignaturePositions(notation.Treble, 2))
	assert.Equal(t, []int{6, 3}, SignaturePositions(notation.Bass, 2))
	assert.Equal(t, "F# (line 5)", DescribeSignature(notation.Treble, 1))

	// Tenor signatures sit where the real pitches fall on a tenor staff.
	tenor := func(names ...string) []int {
		out := make([]int, len(names))
		for i, n := range names {
			p, err := theory.ParsePitch(n)
			require.NoError(t, err)
			out[i] = notation.StaffPosition(notation.Tenor, p)
		}
		return out
	}
	assert.Equal(t, tenor("F#3", "C#4", "G#3", "D#4", "A#3", "E#4", "B#3"), SignaturePositions(notation.Tenor, 7))
	assert.Equal(t, tenor("Bb3", "Eb4", "Ab3", "Db4", "Gb3", "Cb4", "Fb3"), SignaturePositions(notation.Tenor, -7))
	assert.Equal(t, []int{2, 6, 3, 7}, SignaturePositions(notation.Tenor, 4))
	assert.NotEqual(t, DescribeSignature(notation.Bass, 3), DescribeSignature(notation.Tenor, 3))
}

func TestKeySignatureQuiz(t *testing.T) {
	r := dice.New(21)
	for i := 0; i < 300; i++ {
		q := GenerateKeySignatureQuiz(r)
		require.Len(t, q.Options, 4)
		want, ok := KeySignature(q.Key)
		require.True(t, ok, q.Key.String())

		correct := 0
		labels := map[string]bool{}
		for j, o := range q.Options {
			assert.Equal(t, "opt-"+string(rune('0'+j)), o.ID)
			assert.False(t, labels[o.Label()], "duplicate option %s", o.Label())
			labels[o.Label()] = true
			switch o.Distractor {
			case "":
				correct++
				assert.Equal(t, q.CorrectOptionID, o.ID)
				assert.Equal(t, want, o.Count)
				assert.Equal(t, q.Clef, o.Clef)
			case DistractorWrongOrder:
				assert.NotEqual(t, want, o.Count)
				assert.True(t, (o.Count > 0) == (want > 0) || want == 0)
			case DistractorWrongClef:
				assert.Equal(t, want, o.Count)
				assert.NotEqual(t, signatureShift[q.Clef], signatureShift[o.Clef])
			case DistractorWrongAccidental:
				if want >= 0 {
					assert.Less(t, o.Count, 0)
				} else {
					assert.Greater(t, o.Count, 0)
				}
			}
		}
		assert.Equal(t, 1, correct)
	}
}

func TestScaleCompletion(t *testing.T) {
	r := dice.New(22)
	for i := 0; i < 200; i++ {
		q := GenerateScaleCompletion(r)
		require.Len(t, q.Notes, 8)
		require.Len(t, q.Blanks, 2)
		for j, b := range q.Blanks {
			assert.Equal(t, MissingIndexes[j], b.Index)
			assert.Equal(t, q.Notes[b.Index].Name(), b.Answer)
			require.Len(t, b.Options, 4)
			seen := map[string]bool{}
			answers := 0
			for _, o := range b.Options {
				assert.False(t, seen[o.Name], "duplicate option %s", o.Name)
				seen[o.Name] = true
				if o.Tag == "" {
					answers++
					assert.Equal(t, b.Answer, o.Name)
				}
			}
			assert.Equal(t, 1, answers)
		}
	}
}

func TestChromaticScaleAudit(t *testing.T) {
	r := dice.New(23)
	for i := 0; i < 200; i++ {
		q := GenerateChromaticScaleAudit(r)
		require.Len(t, q.Notes, 8)
		var sharps, flats int
		for j, n := range q.Notes {
			step := j
			if !q.Ascending {
				step = 7 - j
			}
			assert.Equal(t, q.Tonic.Abs()+step, n.Abs())
			switch n.Accidental {
			case theory.Sharp:
				sharps++
			case theory.Flat:
				flats++
			}
		}
		usesSharps := sharps > 0 && flats == 0
		usesFlats := flats > 0 && sharps == 0
		require.True(t, usesSharps || usesFlats)
		if q.Ascending {
			assert.Equal(t, q.IsCorrect, usesSharps)
		} else {
			assert.Equal(t, q.IsCorrect, usesFlats)
		}
	}
}

func TestClefIdentificationHasOneReading(t *testing.T) {
	r := dice.New(24)
	for i := 0; i < 100; i++ {
		q := GenerateClefIdentification(r)
		require.Len(t, q.Positions, 8)
		for _, c := range q.Options {
			bottom := c.BottomLine()
			reads := theory.Letter((bottom.Diatonic() + q.Positions[0]) % 7)
			if c == q.Answer {
				assert.Equal(t, q.Key.Letter, reads)
			} else {
				assert.NotEqual(t, q.Key.Letter, reads, "clef %s also reads the tonic", c)
			}
		}
	}
}

func TestKeyAnalysis(t *testing.T) {
	r := dice.New(25)
	for i := 0; i < 100; i++ {
		q := GenerateKeyAnalysis(r)
		require.Len(t, q.Melody, 6)
		require.Len(t, q.Options, 4)
		assert.Equal(t, q.Characteristic, q.Melody[2])
		seen := map[theory.Key]bool{}
		answers := 0
		for _, o := range q.Options {
			assert.False(t, seen[o.Key], "duplicate option %s", o.Key)
			seen[o.Key] = true
			if o.Tag == "" {
				answers++
				assert.Equal(t, q.Answer, o.Key)
			}
		}
		assert.Equal(t, 1, answers)
	}
}

func TestTechnicalNames(t *testing.T) {
	r := dice.New(26)
	for i := 0; i < 200; i++ {
		q := GenerateTechnicalNames(r)
		if q.IsTrue {
			assert.Equal(t, q.Correct, q.Shown)
		} else {
			assert.Equal(t, q.Correct.Abs()+1, q.Shown.Abs())
		}
	}
	assert.Equal(t, "D", DegreeNote(theory.MustName("Eb", 4), Major, DegreeNumber("Leading note")).Name())
	assert.Equal(t, "E#", DegreeNote(theory.MustName("F#", 4), HarmonicMinor, DegreeNumber("leading note")).Name())
}
