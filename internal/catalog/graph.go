package catalog

import (
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/stave/internal/quiz"
)

// graph holds the topic DAG with precomputed indices.
type graph struct {
	topics     []Topic
	byKind     map[quiz.Kind]*Topic
	bySection  map[quiz.Section][]Topic
	roots      []Topic
	dependents map[quiz.Kind][]quiz.Kind
	topoOrder  []Topic
	topoIndex  map[quiz.Kind]int
}

// g is the package-level graph, built by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of topics.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(topics []Topic) *graph {
	gr := &graph{
		topics:     topics,
		byKind:     make(map[quiz.Kind]*Topic, len(topics)),
		bySection:  make(map[quiz.Section][]Topic),
		dependents: make(map[quiz.Kind][]quiz.Kind),
		topoIndex:  make(map[quiz.Kind]int, len(topics)),
	}

	for i := range gr.topics {
		gr.byKind[gr.topics[i].Kind] = &gr.topics[i]
	}

	// Reverse edges
	for i := range gr.topics {
		for _, pre := range gr.topics[i].Prerequisites {
			gr.dependents[pre] = append(gr.dependents[pre], gr.topics[i].Kind)
		}
	}

	// Topological sort (Kahn's algorithm). Ties break by level, then section
	// order, then declaration order.
	position := make(map[quiz.Kind]int, len(topics))
	for i, t := range topics {
		position[t.Kind] = i
	}
	sectionIdx := make(map[quiz.Section]int)
	for i, s := range quiz.AllSections() {
		sectionIdx[s] = i
	}
	less := func(a, b quiz.Kind) bool {
		ta, tb := gr.byKind[a], gr.byKind[b]
		if ta.Level != tb.Level {
			return ta.Level < tb.Level
		}
		if sectionIdx[ta.Section] != sectionIdx[tb.Section] {
			return sectionIdx[ta.Section] < sectionIdx[tb.Section]
		}
		return position[a] < position[b]
	}

	inDegree := make(map[quiz.Kind]int, len(topics))
	for _, t := range topics {
		inDegree[t.Kind] = len(t.Prerequisites)
	}
	var ready []quiz.Kind
	for _, t := range topics {
		if inDegree[t.Kind] == 0 {
			ready = append(ready, t.Kind)
		}
	}
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return less(ready[i], ready[j]) })
		k := ready[0]
		ready = ready[1:]
		gr.topoOrder = append(gr.topoOrder, *gr.byKind[k])
		for _, dep := range gr.dependents[k] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}
	for i, t := range gr.topoOrder {
		gr.topoIndex[t.Kind] = i
	}

	for _, t := range gr.topoOrder {
		if len(t.Prerequisites) == 0 {
			gr.roots = append(gr.roots, t)
		}
		gr.bySection[t.Section] = append(gr.bySection[t.Section], t)
	}
	return gr
}

// GetTopic returns a topic by kind, or error if not found.
func GetTopic(k quiz.Kind) (Topic, error) {
	t, ok := g.byKind[k]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", k)
	}
	return *t, nil
}

// AllTopics returns all topics in declaration order.
func AllTopics() []Topic {
	return slices.Clone(g.topics)
}

// BySection returns the topics of a section in learning order.
func BySection(s quiz.Section) []Topic {
	return slices.Clone(g.bySection[s])
}

// RootTopics returns all topics with no prerequisites, in learning order.
func RootTopics() []Topic {
	return slices.Clone(g.roots)
}

// Dependents returns the kinds that list k as a prerequisite.
func Dependents(k quiz.Kind) []quiz.Kind {
	return slices.Clone(g.dependents[k])
}

// LearningOrder returns all topics in a valid topological order.
func LearningOrder() []Topic {
	return slices.Clone(g.topoOrder)
}

// LearningOrderKinds is LearningOrder reduced to kinds.
func LearningOrderKinds() []quiz.Kind {
	out := make([]quiz.Kind, len(g.topoOrder))
	for i, t := range g.topoOrder {
		out[i] = t.Kind
	}
	return out
}

// IsUnlocked returns true if every prerequisite of k is in done.
func IsUnlocked(k quiz.Kind, done map[quiz.Kind]bool) bool {
	t, ok := g.byKind[k]
	if !ok {
		return false
	}
	for _, pre := range t.Prerequisites {
		if !done[pre] {
			return false
		}
	}
	return true
}

// State classifies k against the kinds practised so far.
func State(k quiz.Kind, done map[quiz.Kind]bool) TopicState {
	switch {
	case done[k]:
		return StateDone
	case IsUnlocked(k, done):
		return StateAvailable
	default:
		return StateLocked
	}
}

// AvailableTopics returns unlocked topics not yet done, in learning order.
func AvailableTopics(done map[quiz.Kind]bool) []Topic {
	var out []Topic
	for _, t := range g.topoOrder {
		if !done[t.Kind] && IsUnlocked(t.Kind, done) {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks the graph for structural issues.
func Validate() error {
	return validateTopics(g.topics)
}
