// Package catalog is the topic graph: every question kind with its section,
// level and prerequisites, and a deterministic learning order.
package catalog

import "github.com/abhisek/stave/internal/quiz"

// Level is a rough difficulty band.
type Level int

const (
	LevelFoundation Level = iota + 1 // Reading the staff and basic rhythm
	LevelCore                        // Keys, intervals and beaming rules
	LevelApplied                     // Chords, analysis and the score in context
)

func (l Level) String() string {
	switch l {
	case LevelFoundation:
		return "foundation"
	case LevelCore:
		return "core"
	case LevelApplied:
		return "applied"
	default:
		return "unknown"
	}
}

// Topic is one node of the graph. Its ID is the quiz kind it practises.
type Topic struct {
	Kind          quiz.Kind
	Name          string
	Description   string
	Section       quiz.Section
	Level         Level
	Keywords      []string
	Prerequisites []quiz.Kind
}

// TopicState is a topic's state within a practice run.
type TopicState int

const (
	StateLocked    TopicState = iota // A prerequisite has not been practised in this run
	StateAvailable                   // All prerequisites practised
	StateDone                        // Practised in this run
)

// Icon returns the display icon for a topic state.
func (s TopicState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateDone:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a topic state.
func (s TopicState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}
