package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/quiz"
)

// ErrEmptyPlan is returned when no topic matches the request.
var ErrEmptyPlan = errors.New("no topics to practise")

// PlanRequest describes the session the learner asked for.
type PlanRequest struct {
	Mode    Mode
	Section quiz.Section // ModeSection only
	Kind    quiz.Kind    // ModeKind only

	// Done holds the kinds completed earlier in this run.
	Done map[quiz.Kind]bool
}

// Planner builds a session plan from a request.
type Planner interface {
	// BuildPlan creates a session plan.
	BuildPlan(req PlanRequest) (*Plan, error)
}

// DefaultPlanner implements the four plan modes.
type DefaultPlanner struct {
	rng *rand.Rand

	TotalSlots       int
	QuestionsPerSlot int
	Duration         time.Duration

	// Allowed restricts the kinds a plan may draw. Nil allows every kind.
	Allowed map[quiz.Kind]bool
}

// NewPlanner creates a DefaultPlanner drawing from rng.
func NewPlanner(rng *rand.Rand) *DefaultPlanner {
	return &DefaultPlanner{
		rng:              rng,
		TotalSlots:       DefaultTotalSlots,
		QuestionsPerSlot: DefaultQuestionsPerSlot,
		Duration:         DefaultSessionDuration,
	}
}

// BuildPlan creates a session plan for the requested mode.
func (p *DefaultPlanner) BuildPlan(req PlanRequest) (*Plan, error) {
	var slots []PlanSlot
	switch req.Mode {
	case ModePath, "":
		slots = p.pathSlots(req.Done)
		if len(slots) == 0 {
			// Everything on the path is done: keep practising across sections.
			slots = p.mixedSlots()
		}
	case ModeSection:
		slots = p.sectionSlots(req.Section)
	case ModeMixed:
		slots = p.mixedSlots()
	case ModeKind:
		t, err := catalog.GetTopic(req.Kind)
		if err != nil {
			return nil, fmt.Errorf("build plan: %w", err)
		}
		slots = []PlanSlot{{Topic: t, Category: CategoryFocus}}
	default:
		return nil, fmt.Errorf("build plan: unknown mode %q", req.Mode)
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("build plan (%s): %w", req.Mode, ErrEmptyPlan)
	}
	return &Plan{
		Slots:            slots,
		QuestionsPerSlot: p.QuestionsPerSlot,
		Duration:         p.Duration,
		Allowed:          p.Allowed,
	}, nil
}

func (p *DefaultPlanner) allowed(t catalog.Topic) bool {
	return p.Allowed == nil || p.Allowed[t.Kind]
}

// pathSlots picks the first unlocked, unfinished topics in learning order.
func (p *DefaultPlanner) pathSlots(done map[quiz.Kind]bool) []PlanSlot {
	var slots []PlanSlot
	for _, t := range catalog.AvailableTopics(done) {
		if len(slots) == p.TotalSlots {
			break
		}
		if p.allowed(t) {
			slots = append(slots, PlanSlot{Topic: t, Category: CategoryPath})
		}
	}
	return slots
}

// sectionSlots covers every topic of the section in learning order.
func (p *DefaultPlanner) sectionSlots(s quiz.Section) []PlanSlot {
	var slots []PlanSlot
	for _, t := range catalog.BySection(s) {
		if p.allowed(t) {
			slots = append(slots, PlanSlot{Topic: t, Category: CategorySection})
		}
	}
	return slots
}

// mixedSlots deals topics from shuffled sections in turn so that a plan
// spreads across as many sections as it has slots.
func (p *DefaultPlanner) mixedSlots() []PlanSlot {
	var piles [][]catalog.Topic
	for _, s := range dice.Shuffle(p.rng, quiz.AllSections()) {
		var pile []catalog.Topic
		for _, t := range catalog.BySection(s) {
			if p.allowed(t) {
				pile = append(pile, t)
			}
		}
		if len(pile) > 0 {
			piles = append(piles, dice.Shuffle(p.rng, pile))
		}
	}

	var slots []PlanSlot
	for round := 0; len(slots) < p.TotalSlots; round++ {
		dealt := false
		for _, pile := range piles {
			if round < len(pile) && len(slots) < p.TotalSlots {
				slots = append(slots, PlanSlot{Topic: pile[round], Category: CategoryMixed})
				dealt = true
			}
		}
		if !dealt {
			break
		}
	}
	return slots
}
