package diagnosis

import (
	"testing"

	"github.com/abhisek/stave/internal/quiz"
)

func TestSpeedRushClassifier(t *testing.T) {
	tests := []struct {
		name   string
		ms     int
		wantOK bool
	}{
		{"under threshold", 1500, true},
		{"at threshold", 2000, false},
		{"over threshold", 3000, false},
		{"not timed", 0, false},
	}
	c := &SpeedRushClassifier{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := c.Classify(&ClassifyInput{ResponseTimeMs: tt.ms})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (v.Category != CategorySpeedRush || v.Confidence != 0.9) {
				t.Errorf("got %+v, want speed-rush at 0.9", v)
			}
		})
	}
}

func TestCarelessClassifier(t *testing.T) {
	tests := []struct {
		name   string
		acc    float64
		wantOK bool
	}{
		{"high accuracy", 0.85, true},
		{"at threshold", 0.80, false},
		{"low accuracy", 0.60, false},
	}
	c := &CarelessClassifier{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := c.Classify(&ClassifyInput{KindAccuracy: tt.acc})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (v.Category != CategoryCareless || v.Confidence != 0.8) {
				t.Errorf("got %+v, want careless at 0.8", v)
			}
		})
	}
}

func TestTagClassifier(t *testing.T) {
	c := &TagClassifier{}

	v, ok := c.Classify(&ClassifyInput{Tag: "interval.compound"})
	if !ok {
		t.Fatal("expected known tag to classify")
	}
	if v.Category != CategoryMisconception || v.MisconceptionID != "interval.compound" {
		t.Errorf("got %+v", v)
	}
	if v.Confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0", v.Confidence)
	}

	if _, ok := c.Classify(&ClassifyInput{}); ok {
		t.Error("empty tag should not classify")
	}
	if _, ok := c.Classify(&ClassifyInput{Tag: "no.such-tag"}); ok {
		t.Error("unknown tag should not classify")
	}
}

func TestRunClassifiers_Priority(t *testing.T) {
	tests := []struct {
		name  string
		input ClassifyInput
		want  ErrorCategory
		by    string
	}{
		{
			name:  "speed beats tag",
			input: ClassifyInput{ResponseTimeMs: 900, Tag: "key.relative", KindAccuracy: 0.9},
			want:  CategorySpeedRush,
			by:    "speed-rush",
		},
		{
			name:  "tag beats careless",
			input: ClassifyInput{ResponseTimeMs: 6000, Tag: "key.relative", KindAccuracy: 0.9},
			want:  CategoryMisconception,
			by:    "distractor-tag",
		},
		{
			name:  "careless without tag",
			input: ClassifyInput{ResponseTimeMs: 6000, KindAccuracy: 0.9},
			want:  CategoryCareless,
			by:    "careless",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunClassifiers(DefaultClassifiers(), &tt.input)
			if got == nil {
				t.Fatal("expected a result")
			}
			if got.Category != tt.want {
				t.Errorf("category = %q, want %q", got.Category, tt.want)
			}
			if got.ClassifierName != tt.by {
				t.Errorf("classifier = %q, want %q", got.ClassifierName, tt.by)
			}
		})
	}

	if got := RunClassifiers(DefaultClassifiers(), &ClassifyInput{ResponseTimeMs: 6000}); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestSpeedRushClassifier_StaffQuestion(t *testing.T) {
	c := &SpeedRushClassifier{}
	staff := &quiz.Question{Staff: []string{"𝄞 ─○─"}}

	if _, ok := c.Classify(&ClassifyInput{Question: staff, ResponseTimeMs: 3000}); !ok {
		t.Error("3s on a staff question should count as rushed")
	}
	if _, ok := c.Classify(&ClassifyInput{Question: &quiz.Question{}, ResponseTimeMs: 3000}); ok {
		t.Error("3s on a text question should not count as rushed")
	}
}

func TestPitchAnswerClassifier(t *testing.T) {
	tests := []struct {
		name    string
		section quiz.Section
		given   string
		answer  string
		want    string
	}{
		{"enharmonic spelling", quiz.SectionPitch, "A#4", "Bb4", "transpose.spelling"},
		{"interval spelling", quiz.SectionIntervals, "F#5", "Gb5", "interval.number"},
		{"wrong octave", quiz.SectionPitch, "D5", "D4", "pitch.octave-number"},
		{"unrelated", quiz.SectionPitch, "E4", "C4", ""},
		{"unparseable", quiz.SectionPitch, "H9", "C4", ""},
	}
	c := &PitchAnswerClassifier{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := c.Classify(&ClassifyInput{
				Question:      &quiz.Question{Section: tt.section},
				Part:          quiz.Part{Format: quiz.FormatPitch, Answer: tt.answer},
				LearnerAnswer: tt.given,
			})
			if tt.want == "" {
				if ok {
					t.Errorf("expected no verdict, got %+v", v)
				}
				return
			}
			if !ok || v.MisconceptionID != tt.want {
				t.Errorf("got %+v (ok=%v), want %s", v, ok, tt.want)
			}
			if GetMisconception(v.MisconceptionID) == nil {
				t.Errorf("%s is not in the taxonomy", v.MisconceptionID)
			}
		})
	}

	if _, ok := c.Classify(&ClassifyInput{Part: quiz.Part{Format: quiz.FormatNumber, Answer: "3"}, LearnerAnswer: "4"}); ok {
		t.Error("number parts are not pitch answers")
	}
}
