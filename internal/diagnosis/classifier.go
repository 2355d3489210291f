package diagnosis

// Verdict is what a classifier concludes about a wrong answer.
type Verdict struct {
	Category        ErrorCategory
	MisconceptionID string
	Confidence      float64
}

// Classifier is a rule-based error classifier.
// Returns false if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (Verdict, bool)
}

// DefaultClassifiers returns classifiers in priority order. A rushed
// answer is reported as such even when it picked a tagged distractor.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&SpeedRushClassifier{},
		&TagClassifier{},
		&PitchAnswerClassifier{},
		&CarelessClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or nil if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) *DiagnosisResult {
	for _, c := range classifiers {
		v, ok := c.Classify(input)
		if ok {
			return &DiagnosisResult{
				Category:        v.Category,
				MisconceptionID: v.MisconceptionID,
				Confidence:      v.Confidence,
				ClassifierName:  c.Name(),
			}
		}
	}
	return nil
}
