package session

import (
	"time"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/quiz"
)

// PlanCategory represents the reason a topic was included in the plan.
type PlanCategory string

const (
	CategoryPath    PlanCategory = "learning-path"
	CategorySection PlanCategory = "section"
	CategoryMixed   PlanCategory = "mixed"
	CategoryFocus   PlanCategory = "focus"
)

// Mode selects how a plan is built.
type Mode string

const (
	// ModePath follows the learning order from the topics that are unlocked.
	ModePath Mode = "path"

	// ModeSection practises every topic of one section.
	ModeSection Mode = "section"

	// ModeMixed draws topics across all sections at random.
	ModeMixed Mode = "mixed"

	// ModeKind drills a single kind.
	ModeKind Mode = "kind"
)

// Modes lists the modes in menu order.
var Modes = []Mode{ModePath, ModeSection, ModeMixed, ModeKind}

// PlanSlot is a single slot in the session plan: a topic that will receive
// a mini-block of questions.
type PlanSlot struct {
	Topic    catalog.Topic
	Category PlanCategory
}

// Plan is the ordered list of topic slots for a session.
type Plan struct {
	Slots            []PlanSlot
	QuestionsPerSlot int
	Duration         time.Duration // Zero means untimed

	// Allowed restricts the topics a learning path may add as they unlock.
	// Nil allows every kind.
	Allowed map[quiz.Kind]bool
}

// DefaultSessionDuration is the standard session length.
const DefaultSessionDuration = 15 * time.Minute

// DefaultQuestionsPerSlot is the number of questions served per mini-block.
const DefaultQuestionsPerSlot = 3

// DefaultTotalSlots is the default number of slots in a session plan.
const DefaultTotalSlots = 5

// HasTopic reports whether the plan already holds a slot for the topic.
func (p *Plan) HasTopic(t catalog.Topic) bool {
	for _, s := range p.Slots {
		if s.Topic.Kind == t.Kind {
			return true
		}
	}
	return false
}
