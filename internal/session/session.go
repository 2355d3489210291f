package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/diagnosis"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/tutor"
)

// MaxRecentErrors is the maximum number of recent errors tracked per kind.
const MaxRecentErrors = 5

// maxDedupAttempts bounds the redraws spent avoiding a repeated question.
const maxDedupAttempts = 5

// compressionThreshold is the character count triggering session-level compression.
const compressionThreshold = tutor.SessionCompressionThreshold

// ErrNoSlot is returned when the plan has no current slot.
var ErrNoSlot = errors.New("session has no current slot")

// NextQuestion generates the next question for the current slot. Seeds come
// from the session's Rand, so a session seed replays the same questions.
// A question identical to one already asked of the kind is redrawn a few
// times before it is accepted.
func NextQuestion(state *SessionState) (*quiz.Question, error) {
	slot := CurrentSlot(state)
	if slot == nil {
		return nil, ErrNoSlot
	}
	kind := slot.Topic.Kind

	var q *quiz.Question
	for attempt := 0; attempt < maxDedupAttempts; attempt++ {
		cand, err := state.Registry.Generate(kind, state.Rand.Uint64())
		if err != nil {
			return nil, fmt.Errorf("next question: %w", err)
		}
		q = cand
		if !contains(state.PriorQuestions[kind], Fingerprint(q)) {
			break
		}
	}

	state.PriorQuestions[kind] = append(state.PriorQuestions[kind], Fingerprint(q))
	state.CurrentQuestion = q
	state.QuestionStartTime = time.Now()
	state.LastResult = nil
	return q, nil
}

// Fingerprint identifies what a learner sees and must answer.
func Fingerprint(q *quiz.Question) string {
	var b strings.Builder
	b.WriteString(q.Prompt)
	for _, line := range q.Staff {
		b.WriteString("\x1f" + line)
	}
	for _, p := range q.Parts {
		b.WriteString("\x1f" + p.Prompt + "=" + p.Answer)
	}
	return b.String()
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

// HandleAnswer grades the learner's answers, keyed by part label, and
// updates session state. Returns a SlotCompletion if the answer completed
// the current slot's topic, nil otherwise.
func HandleAnswer(state *SessionState, answers map[string]string) *SlotCompletion {
	q := state.CurrentQuestion
	if q == nil {
		return nil
	}

	res := quiz.Grade(q, answers)
	correct := res.Correct()
	state.LastResult = &res
	state.LastAnswerCorrect = correct
	state.LastDiagnosis = nil
	state.Completion = nil
	state.TotalQuestions++
	state.QuestionsInSlot++
	if correct {
		state.TotalCorrect++
	}

	// Update per-kind results. Accuracy before this answer feeds diagnosis.
	kr := state.PerKindResults[q.Kind]
	var kindAccuracy float64
	if kr != nil {
		kindAccuracy = kr.Accuracy()
		kr.Attempted++
		kr.PartsAttempted += len(res.Parts)
		kr.PartsCorrect += res.Score()
		if correct {
			kr.Correct++
		}
	}

	if !correct {
		handleWrong(state, q, res, kr, kindAccuracy)
	}

	idx := state.CurrentSlotIndex
	slot := CurrentSlot(state)
	if slot == nil || slot.Topic.Kind != q.Kind {
		return nil
	}
	sp := state.SlotProgress[idx]
	if sp == nil {
		sp = &SlotProgress{}
		state.SlotProgress[idx] = sp
	}
	sp.Record(correct)
	if !state.CompletedSlots[idx] && sp.IsComplete(state.Plan.QuestionsPerSlot) {
		return completeSlot(state, idx)
	}
	return nil
}

func handleWrong(state *SessionState, q *quiz.Question, res quiz.Result, kr *KindResult, kindAccuracy float64) {
	state.WrongCountByKind[q.Kind]++

	wrong := firstWrong(res)
	var diag *diagnosis.DiagnosisResult
	if state.DiagnosisService != nil {
		responseTimeMs := int(time.Since(state.QuestionStartTime).Milliseconds())
		diag = state.DiagnosisService.Diagnose(
			context.Background(),
			q,
			wrong,
			responseTimeMs,
			kindAccuracy,
			func(asyncResult *diagnosis.DiagnosisResult) {
				recordMisconception(state, kr, asyncResult)
			},
		)
		state.LastDiagnosis = diag
		recordMisconception(state, kr, diag)
	}

	errCtx := BuildErrorContext(q, wrong, diag)
	state.ErrorMu.Lock()
	errs := append(state.RecentErrors[q.Kind], errCtx)
	if len(errs) > MaxRecentErrors {
		errs = errs[len(errs)-MaxRecentErrors:]
	}
	state.RecentErrors[q.Kind] = errs
	recent := make([]string, len(errs))
	copy(recent, errs)
	state.ErrorMu.Unlock()

	// Ask the tutor for a lesson once a kind has been missed twice.
	if state.WrongCountByKind[q.Kind] >= 2 && state.LessonService != nil && !state.PendingLesson {
		if topic, err := catalog.GetTopic(q.Kind); err == nil {
			state.PendingLesson = true
			var accuracy float64
			if kr != nil {
				accuracy = kr.Accuracy()
			}
			state.LessonService.RequestLesson(context.Background(), tutor.LessonInput{
				Topic:         topic,
				Question:      q,
				RecentErrors:  recent,
				LastDiagnosis: diag,
				Accuracy:      accuracy,
			})
		}
	}

	// Check compression threshold.
	totalLen := 0
	for _, e := range recent {
		totalLen += len(e)
	}
	if totalLen > compressionThreshold && state.Compressor != nil {
		state.Compressor.CompressErrors(
			context.Background(),
			q.Kind,
			recent,
			func(kind quiz.Kind, summary string) {
				state.ErrorMu.Lock()
				defer state.ErrorMu.Unlock()
				state.RecentErrors[kind] = []string{"[compressed] " + summary}
			},
		)
	}
}

func firstWrong(res quiz.Result) quiz.PartResult {
	for _, p := range res.Parts {
		if !p.Correct {
			return p
		}
	}
	return quiz.PartResult{}
}

// recordMisconception counts a diagnosed misconception. It may run on the
// diagnosis goroutine.
func recordMisconception(state *SessionState, kr *KindResult, d *diagnosis.DiagnosisResult) {
	if kr == nil || d == nil || d.Category != diagnosis.CategoryMisconception {
		return
	}
	state.ErrorMu.Lock()
	kr.Misconceptions[d.MisconceptionID]++
	state.ErrorMu.Unlock()
}

// completeSlot marks the slot's topic done. On a learning path, topics it
// unlocks join the plan.
func completeSlot(state *SessionState, idx int) *SlotCompletion {
	slot := state.Plan.Slots[idx]
	state.CompletedSlots[idx] = true

	wasAvailable := make(map[quiz.Kind]bool)
	for _, t := range catalog.AvailableTopics(state.Done) {
		wasAvailable[t.Kind] = true
	}
	state.Done[slot.Topic.Kind] = true
	if kr := state.PerKindResults[slot.Topic.Kind]; kr != nil {
		kr.Completed = true
	}

	comp := &SlotCompletion{Topic: slot.Topic}
	for _, t := range catalog.AvailableTopics(state.Done) {
		if wasAvailable[t.Kind] {
			continue
		}
		comp.Unlocked = append(comp.Unlocked, t)
		allowed := state.Plan.Allowed == nil || state.Plan.Allowed[t.Kind]
		if slot.Category == CategoryPath && allowed && !state.Plan.HasTopic(t) {
			newSlot := PlanSlot{Topic: t, Category: CategoryPath}
			state.Plan.Slots = append(state.Plan.Slots, newSlot)
			addKindResult(state.PerKindResults, newSlot)
		}
	}
	state.Completion = comp
	return comp
}

// AdvanceSlot moves to the next slot in the plan, skipping completed slots.
// Returns false if all slots are completed.
func AdvanceSlot(state *SessionState) bool {
	state.QuestionsInSlot = 0
	numSlots := len(state.Plan.Slots)
	if numSlots == 0 {
		return false
	}

	// Try each slot in round-robin.
	for i := 0; i < numSlots; i++ {
		state.CurrentSlotIndex = (state.CurrentSlotIndex + 1) % numSlots
		if !state.CompletedSlots[state.CurrentSlotIndex] {
			return true
		}
	}

	return false // All slots completed.
}

// ShouldAdvanceSlot returns true if the current slot's mini-block is done
// or its topic was just completed.
func ShouldAdvanceSlot(state *SessionState) bool {
	return state.QuestionsInSlot >= state.Plan.QuestionsPerSlot || state.CompletedSlots[state.CurrentSlotIndex]
}

// CurrentSlot returns the current plan slot, or nil if invalid.
func CurrentSlot(state *SessionState) *PlanSlot {
	if state.CurrentSlotIndex < 0 || state.CurrentSlotIndex >= len(state.Plan.Slots) {
		return nil
	}
	return &state.Plan.Slots[state.CurrentSlotIndex]
}

// BuildErrorContext constructs an error description string for LLM context.
// When a diagnosis is available, it enriches the context with the category
// and misconception label.
func BuildErrorContext(q *quiz.Question, part quiz.PartResult, diag *diagnosis.DiagnosisResult) string {
	prompt := q.Prompt
	answer := ""
	if p, ok := q.Part(part.Label); ok {
		prompt = fmt.Sprintf("%s (%s)", q.Prompt, p.Prompt)
		answer = p.Answer
	}
	base := fmt.Sprintf("Answered %q for '%s', correct answer was %s", part.Given, prompt, answer)
	if diag == nil || diag.Category == diagnosis.CategoryUnclassified {
		return base
	}
	enriched := fmt.Sprintf("%s [%s", base, diag.Category)
	if diag.MisconceptionID != "" {
		if m := diagnosis.GetMisconception(diag.MisconceptionID); m != nil {
			enriched += ": " + m.Label
		}
	}
	return enriched + "]"
}
