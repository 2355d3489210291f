package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/stave/internal/dice"
)

// EngineVersion is recorded with banked questions. A seed only regenerates
// the same question under a compatible engine version.
const EngineVersion = "v1.0.0"

// ErrUnknownKind is returned when a kind has no registered generator.
var ErrUnknownKind = errors.New("unknown question kind")

// idSpace namespaces question IDs, which are derived from kind and seed.
var idSpace = uuid.MustParse("6f1d3a52-8c1e-4b7a-9f0e-5b2c7d4e9a10")

type builder func(r *rand.Rand) Question

type entry struct {
	kind    Kind
	section Section
	title   string
	build   builder
}

// Registry maps kinds to generators and runs the validator chain.
type Registry struct {
	entries    []entry
	byKind     map[Kind]int
	validators []Validator
	now        func() time.Time
}

// NewRegistry returns a registry of every kind with the default validators.
func NewRegistry() *Registry {
	reg := &Registry{
		entries:    allEntries(),
		byKind:     make(map[Kind]int),
		validators: DefaultValidators(),
		now:        time.Now,
	}
	for i, e := range reg.entries {
		reg.byKind[e.kind] = i
	}
	return reg
}

// Kinds returns every registered kind in display order.
func (reg *Registry) Kinds() []Kind {
	out := make([]Kind, len(reg.entries))
	for i, e := range reg.entries {
		out[i] = e.kind
	}
	return out
}

// KindsIn returns the kinds of one section in display order.
func (reg *Registry) KindsIn(s Section) []Kind {
	var out []Kind
	for _, e := range reg.entries {
		if e.section == s {
			out = append(out, e.kind)
		}
	}
	return out
}

// Info returns the section and title of a kind.
func (reg *Registry) Info(k Kind) (Section, string, error) {
	i, ok := reg.byKind[k]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return reg.entries[i].section, reg.entries[i].title, nil
}

// Generate builds and validates the question for kind and seed. Equal
// arguments give equal questions apart from CreatedAt.
func (reg *Registry) Generate(k Kind, seed uint64) (*Question, error) {
	i, ok := reg.byKind[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	e := reg.entries[i]

	q := e.build(dice.New(seed))
	q.ID = QuestionID(k, seed)
	q.Kind = e.kind
	q.Section = e.section
	q.Title = e.title
	q.Seed = seed
	q.CreatedAt = reg.now()

	if verr := Validate(&q, reg.validators); verr != nil {
		return nil, fmt.Errorf("generate %s (seed %d): %w", k, seed, verr)
	}
	return &q, nil
}

// QuestionID derives the stable ID of a kind and seed.
func QuestionID(k Kind, seed uint64) string {
	name := fmt.Sprintf("%s/%d/%s", k, seed, EngineVersion)
	return uuid.NewSHA1(idSpace, []byte(name)).String()
}

func allEntries() []entry {
	return []entry{
		{"rhythm.time-signature", SectionRhythm, "Time signatures", timeSignature},
		{"rhythm.beaming", SectionRhythm, "Beaming", beaming},
		{"rhythm.compound-beaming", SectionRhythm, "Beaming in compound time", compoundBeaming},
		{"rhythm.rest-completion", SectionRhythm, "Completing a bar with rests", restCompletion},
		{"rhythm.rest-audit", SectionRhythm, "Checking rests", restAudit},

		{"pitch.naming", SectionPitch, "Naming notes", pitchNaming},
		{"pitch.enharmonic", SectionPitch, "Enharmonic equivalents", enharmonic},
		{"pitch.transposition", SectionPitch, "Checking a transposition", transposition},
		{"pitch.comparison", SectionPitch, "Same pitch, different clefs", pitchComparison},

		{"scales.key-signature", SectionScales, "Key signatures", keySignature},
		{"scales.completion", SectionScales, "Completing a scale", scaleCompletion},
		{"scales.chromatic-audit", SectionScales, "Chromatic scale spelling", chromaticAudit},
		{"scales.clef-identification", SectionScales, "Which clef?", clefIdentification},
		{"scales.key-analysis", SectionScales, "Finding the key", keyAnalysis},
		{"scales.technical-names", SectionScales, "Technical names", technicalNames},

		{"intervals.naming", SectionIntervals, "Naming intervals", intervalNaming},
		{"intervals.quality", SectionIntervals, "Interval quality", intervalQuality},
		{"intervals.writer", SectionIntervals, "Writing intervals", intervalWriter},

		{"chords.cadence", SectionChords, "Cadences", cadence},
		{"chords.analysis", SectionChords, "Chord analysis", chordAnalysis},

		{"context.clef-transposition", SectionContext, "Rewriting in another clef", contextClefTransposition},
		{"context.assertions", SectionContext, "True or false", contextAssertions},
		{"context.instrument", SectionContext, "Choosing an instrument", contextInstrument},
		{"context.mediant-count", SectionContext, "Counting the mediant", contextMediant},
		{"context.structure", SectionContext, "Rhythm and symbols", contextStructure},
		{"context.interval-count", SectionContext, "Counting intervals", contextIntervals},

		{"terms.definition", SectionTerms, "Musical terms", termDefinition},
		{"terms.ornament", SectionTerms, "Ornaments", ornament},
		{"terms.instrument", SectionTerms, "Instruments", instrumentFacts},
	}
}
