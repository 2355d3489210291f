package terms

import (
	"testing"

	"github.com/abhisek/stave/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary(t *testing.T) {
	assert.Len(t, Dictionary, 15)
	seen := map[string]bool{}
	for _, d := range Dictionary {
		assert.False(t, seen[d.Term], "duplicate term %s", d.Term)
		seen[d.Term] = true
		assert.NotEmpty(t, d.Definition)
	}
}

func TestTermsQuestionPrefersSameCategory(t *testing.T) {
	r := dice.New(51)
	for i := 0; i < 200; i++ {
		q := GenerateTermsQuestion(r)
		require.Len(t, q.Options, 4)

		sameAvailable := 0
		for _, d := range Dictionary {
			if d.Category == q.Term.Category && d.Term != q.Term.Term && d.Definition != q.Term.Definition {
				sameAvailable++
			}
		}
		same, answers := 0, 0
		seen := map[string]bool{}
		for _, o := range q.Options {
			assert.False(t, seen[o.Text])
			seen[o.Text] = true
			switch o.Tag {
			case "":
				answers++
				assert.Equal(t, q.Answer, o.Text)
			case TagSameCategory:
				same++
			}
		}
		assert.Equal(t, 1, answers)
		assert.Equal(t, min(3, sameAvailable), same, "term %s", q.Term.Term)
	}
}

func TestOrnamentQuestion(t *testing.T) {
	r := dice.New(52)
	for i := 0; i < 100; i++ {
		q := GenerateOrnamentQuestion(r)
		require.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.Answer)
		assert.Equal(t, q.Answer, q.Pattern.Ornament)
		assert.NotEmpty(t, q.Explanation())
	}
}

func TestPatternStaff(t *testing.T) {
	for _, p := range Patterns {
		staff := p.Staff()
		require.Len(t, staff, len(p.Notes))
		if p.SmallFirst {
			assert.Equal(t, "grace", staff[0].Ornament)
		}
	}
	acc := Patterns[5]
	assert.Equal(t, "C#5 D5", acc.Notes[0].String()+" "+acc.Notes[1].String())
}

func TestRangeWeight(t *testing.T) {
	assert.Equal(t, 0, Range("very-low").Weight())
	assert.Equal(t, 6, Range("very-high").Weight())
	assert.Equal(t, -1, Range("sky").Weight())
}

func TestInstrumentQuestion(t *testing.T) {
	r := dice.New(53)
	for i := 0; i < 100; i++ {
		q := GenerateInstrumentQuestion(r)
		require.Len(t, q.Statements, 5)
		assert.False(t, q.Statements[3].Answer, "percussion in the database is unpitched")
		assert.True(t, q.Statements[4].Answer)
	}
	oboe, ok := LookupInstrument("Oboe")
	require.True(t, ok)
	assert.Equal(t, DoubleReed, oboe.Reed)
	_, ok = LookupInstrument("theremin")
	assert.False(t, ok)
}
