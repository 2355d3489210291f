package diagnosis

import (
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/theory"
)

const (
	// SpeedRushThresholdMs is the response time under which a wrong answer
	// to a text-only question counts as rushed.
	SpeedRushThresholdMs = 2000

	// StaffRushThresholdMs applies instead when the question shows a staff,
	// which takes longer to read.
	StaffRushThresholdMs = 3500

	// CarelessAccuracyThreshold is the kind accuracy (exclusive) above
	// which a wrong answer counts as a slip.
	CarelessAccuracyThreshold = 0.80
)

// SpeedRushClassifier flags answers given faster than the question can
// be read.
type SpeedRushClassifier struct{}

func (c *SpeedRushClassifier) Name() string { return "speed-rush" }

func (c *SpeedRushClassifier) Classify(in *ClassifyInput) (Verdict, bool) {
	threshold := SpeedRushThresholdMs
	if in.Question != nil && len(in.Question.Staff) > 0 {
		threshold = StaffRushThresholdMs
	}
	if in.ResponseTimeMs > 0 && in.ResponseTimeMs < threshold {
		return Verdict{Category: CategorySpeedRush, Confidence: 0.9}, true
	}
	return Verdict{}, false
}

// TagClassifier maps the chosen distractor's tag to its misconception.
type TagClassifier struct{}

func (c *TagClassifier) Name() string { return "distractor-tag" }

func (c *TagClassifier) Classify(in *ClassifyInput) (Verdict, bool) {
	if in.Tag == "" || GetMisconception(in.Tag) == nil {
		return Verdict{}, false
	}
	return Verdict{Category: CategoryMisconception, MisconceptionID: in.Tag, Confidence: 1.0}, true
}

// PitchAnswerClassifier explains a typed pitch that is close to the
// answer: the right sound spelled with the wrong letter, or the right
// spelling in the wrong octave.
type PitchAnswerClassifier struct{}

func (c *PitchAnswerClassifier) Name() string { return "pitch-answer" }

func (c *PitchAnswerClassifier) Classify(in *ClassifyInput) (Verdict, bool) {
	if in.Part.Format != quiz.FormatPitch {
		return Verdict{}, false
	}
	given, err := theory.ParsePitch(in.LearnerAnswer)
	if err != nil {
		return Verdict{}, false
	}
	want, err := theory.ParsePitch(in.Part.Answer)
	if err != nil {
		return Verdict{}, false
	}

	var id string
	switch {
	case given.Abs() == want.Abs() && !given.SameSpelling(want):
		id = "transpose.spelling"
		if in.Question != nil && in.Question.Section == quiz.SectionIntervals {
			id = "interval.number"
		}
	case given.Name() == want.Name() && given.Octave != want.Octave:
		id = "pitch.octave-number"
	default:
		return Verdict{}, false
	}
	return Verdict{Category: CategoryMisconception, MisconceptionID: id, Confidence: 0.85}, true
}

// CarelessClassifier flags wrong answers on kinds that are usually right.
type CarelessClassifier struct{}

func (c *CarelessClassifier) Name() string { return "careless" }

func (c *CarelessClassifier) Classify(in *ClassifyInput) (Verdict, bool) {
	if in.KindAccuracy > CarelessAccuracyThreshold {
		return Verdict{Category: CategoryCareless, Confidence: 0.8}, true
	}
	return Verdict{}, false
}
