package session

// CompletionAccuracy is the accuracy a mini-block needs for its topic to
// count as done.
const CompletionAccuracy = 2.0 / 3.0

// SlotProgress tracks progress toward completing one plan slot.
type SlotProgress struct {
	Attempted int
	Correct   int
}

// Record adds a new answer result to the progress.
func (sp *SlotProgress) Record(correct bool) {
	sp.Attempted++
	if correct {
		sp.Correct++
	}
}

// Accuracy is Correct / Attempted, or 0 before the first answer.
func (sp *SlotProgress) Accuracy() float64 {
	if sp.Attempted == 0 {
		return 0
	}
	return float64(sp.Correct) / float64(sp.Attempted)
}

// IsComplete returns true once a full mini-block has been answered with
// at least CompletionAccuracy.
func (sp *SlotProgress) IsComplete(questionsPerSlot int) bool {
	return sp.Attempted >= questionsPerSlot && sp.Accuracy() >= CompletionAccuracy
}
