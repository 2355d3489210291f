package tutor

import (
	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/diagnosis"
	"github.com/abhisek/stave/internal/quiz"
)

// Lesson is an LLM-written explanation for a topic the learner keeps missing.
type Lesson struct {
	Kind          quiz.Kind
	Title         string
	Explanation   string
	WorkedExample string
	Tip           string
}

// LessonInput holds all context needed to write a lesson.
type LessonInput struct {
	Topic         catalog.Topic
	Question      *quiz.Question
	RecentErrors  []string
	LastDiagnosis *diagnosis.DiagnosisResult
	Accuracy      float64
}
