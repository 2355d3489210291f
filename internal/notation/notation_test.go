package notation

import (
	"testing"

	"github.com/abhisek/stave/internal/theory"
	"github.com/stretchr/testify/assert"
)

func TestStaffPosition(t *testing.T) {
	tests := []struct {
		clef Clef
		note string
		want int
	}{
		{Treble, "E4", 0},
		{Treble, "F#4", 1},
		{Treble, "F5", 8},
		{Treble, "C4", -2},
		{Bass, "G2", 0},
		{Bass, "A3", 8},
		{Alto, "C4", 4},
		{Tenor, "C4", 6},
		{Tenor, "Bb3", 5},
	}
	for _, tt := range tests {
		p, err := theory.ParsePitch(tt.note)
		if err != nil {
			t.Fatal(err)
		}
		if got := StaffPosition(tt.clef, p); got != tt.want {
			t.Errorf("StaffPosition(%s, %s) = %d, want %d", tt.clef, tt.note, got, tt.want)
		}
	}
}

func TestDescribePosition(t *testing.T) {
	assert.Equal(t, "line 1", DescribePosition(0))
	assert.Equal(t, "space 1", DescribePosition(1))
	assert.Equal(t, "line 3", DescribePosition(4))
	assert.Equal(t, "space 4", DescribePosition(7))
	assert.Equal(t, "line 5", DescribePosition(8))
	assert.Equal(t, "below the staff", DescribePosition(-1))
	assert.Equal(t, "on 1 ledger line below", DescribePosition(-2))
	assert.Equal(t, "on 2 ledger lines above", DescribePosition(12))
}

func TestNoteCodeAndString(t *testing.T) {
	n := Note{Pitch: theory.MustName("C#", 5), Duration: Sixteenth, SlurStart: true}
	assert.Equal(t, "16", n.Code())
	assert.Equal(t, "(C#5𝅘𝅥𝅯", n.String())

	r := Note{Duration: Quarter, Dots: 1, Rest: true}
	assert.Equal(t, "qrd", r.Code())
	assert.Equal(t, "𝄽.", r.String())

	s := Note{Pitch: theory.MustName("A", 4), Duration: Eighth, Articulation: Staccato, SlurEnd: true}
	assert.Equal(t, "A4♪')", s.String())
}

func TestBeamLine(t *testing.T) {
	assert.Equal(t, "[♪ ♪] [♪ ♪ ♪]", BeamLine(5, [][]int{{0, 1}, {2, 3, 4}}))
	assert.Equal(t, "♪ [♪ ♪]", BeamLine(3, [][]int{{1, 2}}))
}

func TestDurationSixteenths(t *testing.T) {
	assert.Equal(t, 16, Whole.Sixteenths())
	assert.Equal(t, 4, Quarter.Sixteenths())
	assert.Equal(t, 1, Sixteenth.Sixteenths())
	assert.Equal(t, 0, Duration("x").Sixteenths())
}

func TestRhythmLine(t *testing.T) {
	notes := []Note{
		{Duration: Quarter, Dots: 1},
		{Duration: Eighth, Rest: true},
		{Duration: Eighth},
	}
	assert.Equal(t, "♩. 𝄾 ♪", RhythmLine(notes))
}
