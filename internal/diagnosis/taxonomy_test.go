package diagnosis

import (
	"testing"

	"github.com/abhisek/stave/internal/quiz"
)

func TestTaxonomy_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range AllMisconceptions() {
		if seen[m.ID] {
			t.Errorf("duplicate misconception ID %q", m.ID)
		}
		seen[m.ID] = true
		if m.Label == "" || m.Description == "" {
			t.Errorf("%s: label and description are required", m.ID)
		}
	}
}

func TestTaxonomy_EverySectionCovered(t *testing.T) {
	for _, s := range quiz.AllSections() {
		if len(MisconceptionsBySection(s)) == 0 {
			t.Errorf("section %q has no misconceptions", s)
		}
	}
}

func TestTaxonomy_CoversEveryDistractorTag(t *testing.T) {
	reg := quiz.NewRegistry()
	for _, k := range reg.Kinds() {
		for seed := uint64(1); seed <= 100; seed++ {
			q, err := reg.Generate(k, seed)
			if err != nil {
				t.Fatalf("%s seed %d: %v", k, seed, err)
			}
			for _, p := range q.Parts {
				for _, c := range p.Choices {
					if c.Tag == "" {
						continue
					}
					m := GetMisconception(c.Tag)
					if m == nil {
						t.Fatalf("%s: tag %q has no misconception", k, c.Tag)
					}
					if m.Section != q.Section {
						t.Errorf("%s: tag %q is filed under %q, want %q", k, c.Tag, m.Section, q.Section)
					}
				}
			}
		}
	}
}

func TestGetMisconception_Unknown(t *testing.T) {
	if m := GetMisconception("nonexistent"); m != nil {
		t.Errorf("expected nil, got %+v", m)
	}
}
