package quiz

import "testing"

func TestCheckAnswer(t *testing.T) {
	mc := Part{
		Label:   "p",
		Format:  FormatMultipleChoice,
		Choices: []Choice{{Text: "major 3rd"}, {Text: "minor 3rd", Tag: "interval.quality"}, {Text: "major 4th"}},
		Answer:  "major 3rd",
	}
	tf := trueFalsePart("tf", "x", false, "tag")
	pp := Part{Label: "pp", Format: FormatPitch, Answer: "Eb4"}
	num := Part{Label: "n", Format: FormatNumber, Answer: "7"}
	counts := choicePart("c", "x", countChoices([]int{5, 6, 7, 8}, 7, "count"), "7")

	tests := []struct {
		name  string
		input string
		part  Part
		want  bool
	}{
		{"mc exact", "major 3rd", mc, true},
		{"mc case folded", "  MAJOR 3RD ", mc, true},
		{"mc index", "1", mc, true},
		{"mc wrong index", "2", mc, false},
		{"mc out of range", "9", mc, false},
		{"mc wrong text", "minor 3rd", mc, false},
		{"empty", "", mc, false},
		{"tf text", "False", tf, true},
		{"tf short", "f", tf, true},
		{"tf no", "no", tf, true},
		{"tf wrong", "true", tf, false},
		{"tf index", "2", tf, true},
		{"pitch exact", "Eb4", pp, true},
		{"pitch symbol", "E♭4", pp, true},
		{"pitch enharmonic is wrong", "D#4", pp, false},
		{"pitch missing octave", "Eb", pp, false},
		{"pitch garbage", "H4", pp, false},
		{"number", "7", num, true},
		{"number leading zero", "007", num, true},
		{"number plus", "+7", num, true},
		{"number wrong", "8", num, false},
		{"number text", "seven", num, false},
		{"numeric choice text wins", "7", counts, true},
		{"numeric choice by index", "3", counts, true},
		{"numeric choice wrong", "5", counts, false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.input, tt.part); got != tt.want {
			t.Errorf("%s: CheckAnswer(%q) = %v, want %v", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestMenuChoice(t *testing.T) {
	primes := choicePart("p", "x", countChoices([]int{2, 3, 5, 7}, 3, "count"), "3")
	mc := Part{
		Label:   "mc",
		Format:  FormatMultipleChoice,
		Choices: []Choice{{Text: "Alto"}, {Text: "Tenor"}},
		Answer:  "Tenor",
	}

	tests := []struct {
		name  string
		input string
		part  Part
		want  string
		ok    bool
	}{
		{"position beats numeric text", "2", primes, "3", true},
		{"first position", "1", primes, "2", true},
		{"numeric text out of range", "7", primes, "7", true},
		{"text", "tenor", mc, "Tenor", true},
		{"position", "1", mc, "Alto", true},
		{"unknown", "bass", mc, "", false},
	}
	for _, tt := range tests {
		c, ok := MenuChoice(tt.input, tt.part)
		if ok != tt.ok || c.Text != tt.want {
			t.Errorf("%s: MenuChoice(%q) = (%q, %v), want (%q, %v)", tt.name, tt.input, c.Text, ok, tt.want, tt.ok)
		}
	}

	// The menu's second entry is the answer and must grade as correct.
	c, _ := MenuChoice("2", primes)
	if !CheckAnswer(c.Text, primes) {
		t.Error("second menu entry should grade as correct")
	}
}

func TestGrade_Tags(t *testing.T) {
	q := &Question{Parts: []Part{
		trueFalsePart("a", "x", true, "tag.a"),
		choicePart("b", "x", []Choice{{Text: "C"}, {Text: "D", Tag: "tag.b"}}, "C"),
		{Label: "c", Prompt: "x", Format: FormatPitch, Answer: "C4"},
	}}
	res := Grade(q, map[string]string{"a": "False", "b": "D", "c": "C4"})
	if res.Correct() {
		t.Fatal("expected incorrect result")
	}
	if res.Score() != 1 {
		t.Errorf("score = %d, want 1", res.Score())
	}
	tags := res.Tags()
	if len(tags) != 2 || tags[0] != "tag.a" || tags[1] != "tag.b" {
		t.Errorf("tags = %v", tags)
	}
}

func TestGrade_MissingAnswerIsWrong(t *testing.T) {
	q := &Question{Parts: []Part{trueFalsePart("a", "x", true, "")}}
	if Grade(q, nil).Correct() {
		t.Error("expected missing answer to be wrong")
	}
}
