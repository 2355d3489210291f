package diagnosis

import "github.com/abhisek/stave/internal/quiz"

// Misconception defines a known misconception pattern. Its ID is the
// distractor tag the generators attach to wrong choices.
type Misconception struct {
	ID          string
	Section     quiz.Section
	Label       string
	Description string
	Examples    []string
}

// registry is the package-level misconception registry, keyed by ID.
var registry map[string]*Misconception

// bySection indexes misconceptions by section.
var bySection map[quiz.Section][]*Misconception

func init() {
	registry = make(map[string]*Misconception, len(seedMisconceptions))
	bySection = make(map[quiz.Section][]*Misconception)
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		registry[m.ID] = m
		bySection[m.Section] = append(bySection[m.Section], m)
	}
}

// GetMisconception returns a misconception by ID, or nil if not found.
func GetMisconception(id string) *Misconception {
	return registry[id]
}

// MisconceptionsBySection returns all misconceptions for a given section.
func MisconceptionsBySection(s quiz.Section) []*Misconception {
	return bySection[s]
}

// AllMisconceptions returns every misconception in declaration order.
func AllMisconceptions() []*Misconception {
	result := make([]*Misconception, len(seedMisconceptions))
	for i := range seedMisconceptions {
		result[i] = &seedMisconceptions[i]
	}
	return result
}
