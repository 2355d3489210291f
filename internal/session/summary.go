package session

import (
	"maps"
	"sort"
	"time"

	"github.com/abhisek/stave/internal/diagnosis"
	"github.com/abhisek/stave/internal/quiz"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	KindResults    []KindResult
	Misconceptions []MisconceptionCount
}

// MisconceptionCount is how often one misconception was diagnosed.
type MisconceptionCount struct {
	ID    string
	Label string
	Count int
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	state.ErrorMu.Lock()
	defer state.ErrorMu.Unlock()

	var results []KindResult
	seen := make(map[quiz.Kind]bool)
	totals := make(map[string]int)
	for _, slot := range state.Plan.Slots {
		kr, ok := state.PerKindResults[slot.Topic.Kind]
		if !ok || seen[kr.Kind] {
			continue
		}
		seen[kr.Kind] = true
		r := *kr
		r.Misconceptions = maps.Clone(kr.Misconceptions)
		results = append(results, r)
		for id, n := range kr.Misconceptions {
			totals[id] += n
		}
	}

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &SessionSummary{
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		KindResults:    results,
		Misconceptions: rankMisconceptions(totals),
	}
}

// rankMisconceptions orders by count, most frequent first, then by ID.
func rankMisconceptions(totals map[string]int) []MisconceptionCount {
	out := make([]MisconceptionCount, 0, len(totals))
	for id, n := range totals {
		mc := MisconceptionCount{ID: id, Label: id, Count: n}
		if m := diagnosis.GetMisconception(id); m != nil {
			mc.Label = m.Label
		}
		out = append(out, mc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}
