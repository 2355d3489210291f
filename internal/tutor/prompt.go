package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/quiz"
)

const lessonSystemPrompt = `You are a patient music theory teacher preparing a student for a graded theory exam. The student keeps missing one kind of question and needs a short, clear lesson.`

func buildLessonUserMessage(input LessonInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Topic.Description)
	fmt.Fprintf(&b, "Section: %s\n", quiz.SectionDisplayName(input.Topic.Section))
	fmt.Fprintf(&b, "Level: %s\n", input.Topic.Level)
	if len(input.Topic.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(input.Topic.Keywords, ", "))
	}
	fmt.Fprintf(&b, "Student accuracy on this topic: %.0f%%\n", input.Accuracy*100)

	if q := input.Question; q != nil {
		fmt.Fprintf(&b, "\nLast question:\n%s\n", q.Prompt)
		for _, line := range q.Staff {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		fmt.Fprintf(&b, "Reference explanation: %s\n", q.Explanation)
	}

	b.WriteString("\nRecent Errors:\n")
	if len(input.RecentErrors) == 0 {
		b.WriteString("None\n")
	} else {
		for _, e := range input.RecentErrors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	if input.LastDiagnosis != nil {
		fmt.Fprintf(&b, "\nDiagnosed Issue:\nCategory: %s\n", input.LastDiagnosis.Category)
		if input.LastDiagnosis.MisconceptionID != "" {
			fmt.Fprintf(&b, "Misconception: %s\n", input.LastDiagnosis.MisconceptionID)
		}
	}

	b.WriteString(`
Instructions:
1. Explain the rule the student is missing in 3-5 sentences. Address the specific errors shown above.
2. Work one similar example step by step with numbered steps. Use a different key, clef or interval from the ones the student got wrong.
3. Finish with one short rule of thumb the student can remember in the exam.
4. Spell notes with letters, "#" for sharp and "b" for flat, and an octave number where it matters (C4 is middle C). Use plain text only.`)

	return b.String()
}

const compressionSystemPrompt = `You are summarizing a music theory student's error patterns on one kind of question. Create a concise summary that captures the key patterns without losing important details.`

func buildCompressionUserMessage(topic catalog.Topic, errors []string) string {
	var b strings.Builder

	if topic.Name != "" {
		fmt.Fprintf(&b, "Topic: %s\n", topic.Name)
	}
	b.WriteString("Errors:\n")
	for _, e := range errors {
		fmt.Fprintf(&b, "- %s\n", e)
	}

	b.WriteString(`
Instructions:
Summarize these errors in 2-3 sentences. Focus on:
- What types of mistakes the student is making (e.g., reading the bass clef as treble, miscounting interval numbers)
- Any patterns you see across multiple errors
- What the student seems to understand and what they are struggling with

Keep the summary concise and factual. It is used internally as context for later lessons, so leave out encouragement and advice.`)

	return b.String()
}
