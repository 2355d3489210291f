package quiz

import "fmt"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if q.Kind == "" {
		return fail("kind is empty")
	}
	if q.Section == "" {
		return fail("section is empty")
	}
	if q.Title == "" {
		return fail("title is empty")
	}
	if q.Prompt == "" {
		return fail("prompt is empty")
	}
	if len(q.Prompt) > 500 {
		return fail("prompt exceeds 500 characters")
	}
	if q.Explanation == "" {
		return fail("explanation is empty")
	}
	if len(q.Explanation) > 1000 {
		return fail("explanation exceeds 1000 characters")
	}
	if len(q.Parts) == 0 {
		return fail("question has no parts")
	}

	labels := make(map[string]bool, len(q.Parts))
	for i, p := range q.Parts {
		if p.Label == "" {
			return fail("part %d has no label", i+1)
		}
		if labels[p.Label] {
			return fail("duplicate part label %q", p.Label)
		}
		labels[p.Label] = true
		if p.Prompt == "" {
			return fail("part %q has no prompt", p.Label)
		}
		switch p.Format {
		case FormatMultipleChoice, FormatTrueFalse, FormatPitch, FormatNumber:
		default:
			return fail("part %q has unknown format %q", p.Label, p.Format)
		}
		if p.Answer == "" {
			return fail("part %q has no answer", p.Label)
		}
	}
	return nil
}
