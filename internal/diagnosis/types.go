package diagnosis

import "github.com/abhisek/stave/internal/quiz"

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategoryCareless      ErrorCategory = "careless"
	CategorySpeedRush     ErrorCategory = "speed-rush"
	CategoryMisconception ErrorCategory = "misconception"
	CategoryUnclassified  ErrorCategory = "unclassified"
)

// ClassifyInput holds the context for classifying one wrong part.
type ClassifyInput struct {
	Question      *quiz.Question
	Part          quiz.Part
	LearnerAnswer string

	// Tag is the tag of the chosen distractor, empty for free text.
	Tag string

	ResponseTimeMs int

	// KindAccuracy is the accuracy on this kind so far in the session.
	KindAccuracy float64
}

// DiagnosisResult is the output of classifying a wrong answer.
type DiagnosisResult struct {
	Category        ErrorCategory // careless, speed-rush, misconception, unclassified
	MisconceptionID string        // Non-empty only when Category == misconception
	Confidence      float64       // 0.0–1.0
	ClassifierName  string        // Which classifier/LLM produced this result
	Reasoning       string        // LLM reasoning (empty for rule-based)
}
