package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/diagnosis"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/tutor"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseLoading  SessionPhase = iota // Building the plan
	PhaseActive                       // Serving questions
	PhaseFeedback                     // Showing answer feedback
	PhaseEnding                       // Session time expired or quit confirmed
	PhaseSummary                      // Showing summary screen
)

// SessionState tracks the runtime state of an active session. Nothing in it
// outlives the process.
type SessionState struct {
	// Plan is the session plan built at start.
	Plan *Plan

	// Registry generates and validates questions.
	Registry *quiz.Registry

	// Rand draws question seeds. Owned by this session.
	Rand *rand.Rand

	// Seed is the seed Rand was created from.
	Seed uint64

	// CurrentSlotIndex is the index into Plan.Slots for the current topic.
	CurrentSlotIndex int

	// QuestionsInSlot is the number of questions answered in the current mini-block.
	QuestionsInSlot int

	// CurrentQuestion is the active question being displayed (nil between questions).
	CurrentQuestion *quiz.Question

	// LastResult is the graded result of the most recent answer.
	LastResult *quiz.Result

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of fully correct answers so far.
	TotalCorrect int

	// PerKindResults tracks per-kind stats for the summary screen.
	PerKindResults map[quiz.Kind]*KindResult

	// SlotProgress tracks completion per slot index.
	SlotProgress map[int]*SlotProgress

	// Done is the set of kinds completed in this run.
	Done map[quiz.Kind]bool

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time.
	Elapsed time.Duration

	// Phase is the current session phase.
	Phase SessionPhase

	// PriorQuestions holds fingerprints of questions asked per kind (for dedup).
	PriorQuestions map[quiz.Kind][]string

	// RecentErrors tracks recent errors per kind (for LLM context).
	RecentErrors map[quiz.Kind][]string

	// ShowingFeedback is true when the feedback overlay is displayed.
	ShowingFeedback bool

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// Completion is set when the last answer completed a slot, for feedback display.
	Completion *SlotCompletion

	// SessionID is the UUID for this session.
	SessionID string

	// QuestionStartTime tracks when the current question was first displayed.
	QuestionStartTime time.Time

	// TimeExpired indicates the session timer has run out.
	TimeExpired bool

	// CompletedSlots tracks slot indices whose topic is done.
	CompletedSlots map[int]bool

	// DiagnosisService classifies wrong answers (nil if diagnosis disabled).
	DiagnosisService *diagnosis.Service

	// LastDiagnosis is the most recent diagnosis result (nil if last answer was correct).
	LastDiagnosis *diagnosis.DiagnosisResult

	// LessonService generates tutor lessons (nil without an LLM).
	LessonService *tutor.Service

	// Compressor handles context compression (nil if compression disabled).
	Compressor *tutor.Compressor

	// WrongCountByKind tracks per-kind wrong answer count in this session.
	WrongCountByKind map[quiz.Kind]int

	// PendingLesson is true when a lesson has been requested but not yet consumed.
	PendingLesson bool

	// ErrorMu protects RecentErrors during async compression callbacks.
	ErrorMu sync.Mutex
}

// KindResult tracks per-kind performance within a single session.
type KindResult struct {
	Kind      quiz.Kind
	Name      string
	Section   quiz.Section
	Category  PlanCategory
	Attempted int
	Correct   int

	// PartsAttempted and PartsCorrect count individual answer parts.
	PartsAttempted int
	PartsCorrect   int

	// Misconceptions counts diagnosed misconception IDs.
	Misconceptions map[string]int

	Completed bool
}

// Accuracy is Correct / Attempted, or 0 before the first answer.
func (kr *KindResult) Accuracy() float64 {
	if kr.Attempted == 0 {
		return 0
	}
	return float64(kr.Correct) / float64(kr.Attempted)
}

// SlotCompletion records a topic finishing, for display purposes.
type SlotCompletion struct {
	Topic catalog.Topic

	// Unlocked lists topics that became available because of it.
	Unlocked []catalog.Topic
}

// NewSessionState creates a new session state with initialized maps.
func NewSessionState(plan *Plan, reg *quiz.Registry, rng *rand.Rand, sessionID string, done map[quiz.Kind]bool) *SessionState {
	if done == nil {
		done = make(map[quiz.Kind]bool)
	}

	perKind := make(map[quiz.Kind]*KindResult)
	for _, slot := range plan.Slots {
		addKindResult(perKind, slot)
	}

	return &SessionState{
		Plan:             plan,
		Registry:         reg,
		Rand:             rng,
		SessionID:        sessionID,
		Done:             done,
		PerKindResults:   perKind,
		SlotProgress:     make(map[int]*SlotProgress),
		PriorQuestions:   make(map[quiz.Kind][]string),
		RecentErrors:     make(map[quiz.Kind][]string),
		StartTime:        time.Now(),
		Phase:            PhaseActive,
		CompletedSlots:   make(map[int]bool),
		WrongCountByKind: make(map[quiz.Kind]int),
	}
}

func addKindResult(perKind map[quiz.Kind]*KindResult, slot PlanSlot) {
	if _, exists := perKind[slot.Topic.Kind]; exists {
		return
	}
	perKind[slot.Topic.Kind] = &KindResult{
		Kind:           slot.Topic.Kind,
		Name:           slot.Topic.Name,
		Section:        slot.Topic.Section,
		Category:       slot.Category,
		Misconceptions: make(map[string]int),
	}
}
