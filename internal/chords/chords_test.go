package chords

import (
	"errors"
	"testing"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pitches(tones []Tone) []string {
	out := make([]string, len(tones))
	for i, t := range tones {
		out[i] = t.String()
	}
	return out
}

func TestBuildTriad(t *testing.T) {
	tests := []struct {
		key    string
		degree Roman
		inv    Inversion
		want   []string
	}{
		{"C major", I, RootPosition, []string{"C4", "E4", "G4"}},
		{"C major", IV, RootPosition, []string{"F4", "A4", "C5"}},
		{"C major", V, FirstInversion, []string{"B4", "D5", "G5"}},
		{"C major", I, SecondInversion, []string{"G4", "C5", "E5"}},
		{"C minor", V, RootPosition, []string{"G4", "B4", "D5"}},
		{"C minor", IV, RootPosition, []string{"F4", "Ab4", "C5"}},
		{"D minor", V, FirstInversion, []string{"C#5", "E5", "A5"}},
		{"F major", II, RootPosition, []string{"G4", "Bb4", "D5"}},
	}
	for _, tt := range tests {
		got, err := BuildTriad(tt.key, tt.degree, tt.inv)
		require.NoError(t, err)
		assert.Equal(t, tt.want, pitches(got), "%s %s%s", tt.key, tt.degree, tt.inv)
	}
}

func TestMinorDominantHasRaisedLeadingNote(t *testing.T) {
	got, err := BuildTriad("C minor", V, RootPosition)
	require.NoError(t, err)
	third := got[1].Pitch
	assert.Equal(t, "third", got[1].Role)
	assert.Equal(t, theory.B, third.Letter)
	assert.Equal(t, theory.Natural, third.Accidental)
}

func TestBuildTriadErrors(t *testing.T) {
	_, err := BuildTriad("H major", I, RootPosition)
	assert.True(t, errors.Is(err, ErrUnknownKey))
	_, err = BuildTriad("Fb major", I, RootPosition)
	assert.True(t, errors.Is(err, ErrUnknownKey))
	_, err = BuildTriad("C major", Roman("VII"), RootPosition)
	assert.True(t, errors.Is(err, ErrUnknownDegree))
	_, err = BuildTriad("C major", I, Inversion("d"))
	assert.Error(t, err)
}

func TestCadenceProgression(t *testing.T) {
	r := dice.New(41)
	assert.Equal(t, [2]Roman{V, I}, CadenceProgression(r, Perfect))
	assert.Equal(t, [2]Roman{IV, I}, CadenceProgression(r, Plagal))
	for i := 0; i < 50; i++ {
		p := CadenceProgression(r, Imperfect)
		assert.Equal(t, V, p[1])
		assert.Contains(t, []Roman{I, II, IV}, p[0])
	}
}

func TestCadenceTypeQuestion(t *testing.T) {
	r := dice.New(42)
	for i := 0; i < 100; i++ {
		q := GenerateCadenceTypeQuestion(r)
		assert.Contains(t, q.Choices, q.Cadence)
		require.Len(t, q.Left.Bass, 1)
		require.Len(t, q.Left.Treble, 2)
		assert.Equal(t, RootPosition, q.Left.Inversion)
		assert.Contains(t, []Inversion{RootPosition, FirstInversion}, q.Right.Inversion)
		switch q.Cadence {
		case Perfect, Plagal:
			assert.Equal(t, I, q.Right.Degree)
		case Imperfect:
			assert.Equal(t, V, q.Right.Degree)
		}
		assert.NotEmpty(t, q.Explanation())
	}
}

func TestChordAnalysisQuestion(t *testing.T) {
	r := dice.New(43)
	for i := 0; i < 100; i++ {
		q := GenerateChordAnalysisQuestion(r)
		require.Len(t, q.Chords, 5)
		require.Len(t, q.Labels, 3)
		assert.Equal(t, []string{"Va", "IVb", "Vb"}, []string{q.Labels[0].Answer, q.Labels[1].Answer, q.Labels[2].Answer})
		for _, l := range q.Labels {
			require.Len(t, l.Choices, 4)
			assert.Contains(t, l.Choices, l.Answer)
			seen := map[string]bool{}
			for _, c := range l.Choices {
				assert.False(t, seen[c])
				seen[c] = true
				assert.Contains(t, labelPool, c)
			}
		}
	}
}
