package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/stave/internal/dice"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/router"
	"github.com/abhisek/stave/internal/screen"
	"github.com/abhisek/stave/internal/screens/summary"
	sess "github.com/abhisek/stave/internal/session"
	"github.com/abhisek/stave/internal/tutor"
	"github.com/abhisek/stave/internal/ui/components"
	"github.com/abhisek/stave/internal/ui/layout"
)

// SessionScreen implements screen.Screen for an active practice session.
type SessionScreen struct {
	deps  Deps
	req   sess.PlanRequest
	state *sess.SessionState

	// part is the index of the part being answered.
	part    int
	answers map[string]string
	choice  components.MultiChoice
	input   components.AnswerInput

	// lesson is a tutor lesson waiting to be shown with the next feedback.
	lesson      *tutor.Lesson
	lessonShown bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.BackHandler = (*SessionScreen)(nil)

// New creates a SessionScreen that plans a session for req on Init.
func New(deps Deps, req sess.PlanRequest) *SessionScreen {
	if deps.Done == nil {
		deps.Done = make(map[quiz.Kind]bool)
	}
	return &SessionScreen{deps: deps, req: req}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.initSession()
}

func (s *SessionScreen) Title() string {
	switch s.req.Mode {
	case sess.ModeSection:
		return quiz.SectionDisplayName(s.req.Section)
	case sess.ModeMixed:
		return "Mixed Practice"
	case sess.ModeKind:
		return "Focus"
	}
	return "Learning Path"
}

// HandlesBack keeps Esc for the quit confirmation.
func (s *SessionScreen) HandlesBack() bool {
	return s.state != nil && s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.ShowingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.choicePart() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-9", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height)
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.state.ShowingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case bankedMsg:
		if msg.Err != nil {
			s.deps.logger().Warn("failed to bank question", "id", msg.ID, "error", msg.Err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.active() && !s.choicePart() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// initSession builds the plan from the request.
func (s *SessionScreen) initSession() tea.Cmd {
	deps, req := s.deps, s.req
	return func() tea.Msg {
		seed := deps.seed()
		rng := dice.New(seed)

		planner := sess.NewPlanner(rng)
		if deps.QuestionsPerKind > 0 {
			planner.QuestionsPerSlot = deps.QuestionsPerKind
		}
		planner.Duration = deps.Duration
		planner.Allowed = deps.Allowed

		req.Done = deps.Done
		plan, err := planner.BuildPlan(req)
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		state := sess.NewSessionState(plan, deps.Registry, rng, uuid.NewString(), deps.Done)
		state.Seed = seed
		state.DiagnosisService = deps.Diagnosis
		state.LessonService = deps.Lessons
		state.Compressor = deps.Compressor

		deps.logger().Debug("session planned",
			"session", state.SessionID,
			"mode", req.Mode,
			"seed", seed,
			"slots", len(plan.Slots),
		)
		return sessionInitMsg{State: state}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, tea.Batch(s.nextQuestion(), tickCmd())
}

// nextQuestion serves a question from the current slot. A slot whose
// generator fails is skipped.
func (s *SessionScreen) nextQuestion() tea.Cmd {
	for range s.state.Plan.Slots {
		q, err := sess.NextQuestion(s.state)
		if err == nil {
			s.startQuestion(q)
			return tea.Batch(s.input.Init(), s.bankQuestion(q))
		}

		var kind quiz.Kind
		if slot := sess.CurrentSlot(s.state); slot != nil {
			kind = slot.Topic.Kind
		}
		s.deps.logger().Warn("question generation failed", "kind", kind, "error", err)
		s.state.CompletedSlots[s.state.CurrentSlotIndex] = true
		if !sess.AdvanceSlot(s.state) {
			break
		}
	}
	return func() tea.Msg { return sessionEndMsg{} }
}

func (s *SessionScreen) startQuestion(q *quiz.Question) {
	s.part = 0
	s.answers = make(map[string]string, len(q.Parts))
	s.preparePart()
}

// preparePart sets up the input widget for the current part.
func (s *SessionScreen) preparePart() {
	p := s.currentPart()
	if p == nil {
		return
	}
	if len(p.Choices) > 0 {
		texts := make([]string, len(p.Choices))
		for i, c := range p.Choices {
			texts[i] = c.Text
		}
		s.choice = components.NewMultiChoice(texts)
		return
	}
	mode := components.InputPitch
	if p.Format == quiz.FormatNumber {
		mode = components.InputNumber
	}
	s.input = components.NewAnswerInput(mode)
}

func (s *SessionScreen) bankQuestion(q *quiz.Question) tea.Cmd {
	bank := s.deps.Bank
	if bank == nil {
		return nil
	}
	return func() tea.Msg {
		return bankedMsg{ID: q.ID, Err: bank.Save(context.Background(), q)}
	}
}

func (s *SessionScreen) currentPart() *quiz.Part {
	if s.state == nil || s.state.CurrentQuestion == nil {
		return nil
	}
	parts := s.state.CurrentQuestion.Parts
	if s.part < 0 || s.part >= len(parts) {
		return nil
	}
	return &parts[s.part]
}

func (s *SessionScreen) choicePart() bool {
	p := s.currentPart()
	return p != nil && len(p.Choices) > 0
}

// active reports whether the learner is answering a question.
func (s *SessionScreen) active() bool {
	return s.state != nil &&
		s.state.Phase == sess.PhaseActive &&
		!s.state.ShowingFeedback &&
		!s.state.ShowingQuitConfirm &&
		s.currentPart() != nil
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == sess.PhaseEnding || s.state.Phase == sess.PhaseSummary {
		return s, nil
	}

	s.state.Elapsed = time.Since(s.state.StartTime)
	s.pollLesson()

	if d := s.state.Plan.Duration; d > 0 && s.state.Elapsed >= d {
		s.state.TimeExpired = true
		// Let the learner finish the question on screen.
		if s.state.ShowingFeedback || s.state.CurrentQuestion == nil {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
	}

	return s, tickCmd()
}

// pollLesson picks up a finished tutor lesson.
func (s *SessionScreen) pollLesson() {
	svc := s.state.LessonService
	if svc == nil || !s.state.PendingLesson {
		return
	}
	lesson, done, err := svc.Poll()
	if !done {
		return
	}
	s.state.PendingLesson = false
	if err != nil {
		s.deps.logger().Warn("tutor lesson failed", "error", err)
		return
	}
	s.lesson = lesson
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, nil
	}

	s.state.ShowingFeedback = false
	s.state.Phase = sess.PhaseActive
	s.state.Completion = nil
	s.state.LastDiagnosis = nil
	if s.lesson != nil && s.lessonShown {
		s.lesson = nil
	}
	s.lessonShown = false

	if s.state.TimeExpired {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	if sess.ShouldAdvanceSlot(s.state) {
		if !sess.AdvanceSlot(s.state) {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
	}

	return s, s.nextQuestion()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state.Phase == sess.PhaseSummary {
		return s, nil
	}

	s.state.Elapsed = time.Since(s.state.StartTime)
	s.state.Phase = sess.PhaseSummary
	sum := sess.BuildSummary(s.state)

	s.deps.logger().Info("session finished",
		"session", s.state.SessionID,
		"seed", s.state.Seed,
		"questions", sum.TotalQuestions,
		"correct", sum.TotalCorrect,
	)

	next := summary.New(sum, s.state.Seed)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback: any key dismisses.
	if s.state.ShowingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if !s.active() {
		return s, nil
	}
	if key == "esc" {
		s.state.ShowingQuitConfirm = true
		return s, nil
	}

	if s.choicePart() {
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted() {
			return s.answerPart(s.choice.Value())
		}
		return s, nil
	}

	if key == "enter" {
		if !s.input.Ready() {
			return s, nil
		}
		return s.answerPart(s.input.Value())
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// answerPart records the answer to the current part and moves on to the
// next part, or grades the question after the last one.
func (s *SessionScreen) answerPart(answer string) (screen.Screen, tea.Cmd) {
	p := s.currentPart()
	if p == nil {
		return s, nil
	}
	s.answers[p.Label] = answer
	s.part++
	if s.currentPart() != nil {
		s.preparePart()
		return s, s.input.Init()
	}
	return s.submitAnswer()
}

// submitAnswer grades the collected answers and shows feedback.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	sess.HandleAnswer(s.state, s.answers)
	s.pollLesson()
	s.lessonShown = s.lesson != nil

	s.state.ShowingFeedback = true
	s.state.Phase = sess.PhaseFeedback
	return s, nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
