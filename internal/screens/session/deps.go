package session

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/abhisek/stave/internal/diagnosis"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/store"
	"github.com/abhisek/stave/internal/tutor"
)

// Deps are the services a practice session draws on. Only Registry and
// Done are required.
type Deps struct {
	Registry *quiz.Registry

	// Seed fixes the session's randomness. Zero draws a fresh seed for
	// every session.
	Seed uint64

	QuestionsPerKind int

	// Duration limits a session. Zero means untimed.
	Duration time.Duration

	// Allowed restricts the kinds a plan may draw. Nil allows every kind.
	Allowed map[quiz.Kind]bool

	// Done is shared by every session of a run so that completed topics
	// stay completed.
	Done map[quiz.Kind]bool

	// Bank stores every served question when set.
	Bank store.QuestionRepo

	Diagnosis  *diagnosis.Service
	Lessons    *tutor.Service
	Compressor *tutor.Compressor

	Logger *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d Deps) seed() uint64 {
	if d.Seed != 0 {
		return d.Seed
	}
	return rand.Uint64()
}
