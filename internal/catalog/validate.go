package catalog

import (
	"fmt"
	"strings"

	"github.com/abhisek/stave/internal/quiz"
)

// validateTopics performs all structural checks on the given topic set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTopics(topics []Topic) error {
	var errs []string

	kinds := make(map[quiz.Kind]bool, len(topics))
	sections := make(map[quiz.Section]bool)

	// Check for duplicate kinds
	for _, t := range topics {
		if kinds[t.Kind] {
			errs = append(errs, fmt.Sprintf("duplicate topic: %q", t.Kind))
		}
		kinds[t.Kind] = true
		sections[t.Section] = true
		if t.Level < LevelFoundation || t.Level > LevelApplied {
			errs = append(errs, fmt.Sprintf("topic %q has invalid level %d", t.Kind, t.Level))
		}
	}

	// Check for dangling prerequisites
	for _, t := range topics {
		for _, pre := range t.Prerequisites {
			if !kinds[pre] {
				errs = append(errs, fmt.Sprintf("topic %q references nonexistent prerequisite %q", t.Kind, pre))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[quiz.Kind]int, len(topics))
	adj := make(map[quiz.Kind][]quiz.Kind)
	for _, t := range topics {
		inDegree[t.Kind] = len(t.Prerequisites)
		for _, pre := range t.Prerequisites {
			adj[pre] = append(adj[pre], t.Kind)
		}
	}
	var queue []quiz.Kind
	for _, t := range topics {
		if inDegree[t.Kind] == 0 {
			queue = append(queue, t.Kind)
		}
	}
	visited := 0
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[k] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(topics) {
		var cycle []string
		for _, t := range topics {
			if inDegree[t.Kind] > 0 {
				cycle = append(cycle, string(t.Kind))
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving topics: %s", strings.Join(cycle, ", ")))
	}

	// Check all declared sections are populated
	for _, s := range quiz.AllSections() {
		if !sections[s] {
			errs = append(errs, fmt.Sprintf("section %q has no topics", s))
		}
	}

	// Every topic must be generatable and every generator must have a topic
	reg := quiz.NewRegistry()
	registered := make(map[quiz.Kind]bool)
	for _, k := range reg.Kinds() {
		registered[k] = true
		if !kinds[k] {
			errs = append(errs, fmt.Sprintf("kind %q has no topic", k))
		}
	}
	for _, t := range topics {
		if !registered[t.Kind] {
			errs = append(errs, fmt.Sprintf("topic %q has no generator", t.Kind))
			continue
		}
		if sec, _, _ := reg.Info(t.Kind); sec != t.Section {
			errs = append(errs, fmt.Sprintf("topic %q is in section %q but its generator is in %q", t.Kind, t.Section, sec))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
