package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/diagnosis"
	sess "github.com/abhisek/stave/internal/session"
	"github.com/abhisek/stave/internal/ui/components"
	"github.com/abhisek/stave/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	state := s.state
	if state == nil || state.CurrentQuestion == nil {
		return centered(width).
			Foreground(theme.TextDim).
			Render("\n\n  Writing a question...")
	}

	var topicName string
	if slot := sess.CurrentSlot(state); slot != nil {
		topicName = slot.Topic.Name
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  ♪ %s", topicName))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d  %s %s",
			state.TotalQuestions+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			s.clock(),
		))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := state.CurrentQuestion
	textWidth := min(width-8, 76)

	prompt := lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	if len(q.Staff) > 0 {
		staff := theme.Staff.Render(strings.Join(q.Staff, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, staff))
		b.WriteString("\n\n")
	}

	p := s.currentPart()
	if p == nil {
		return b.String()
	}

	if len(q.Parts) > 1 {
		b.WriteString(centered(width).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Part %d of %d", s.part+1, len(q.Parts))))
		b.WriteString("\n")
	}
	if p.Prompt != "" {
		b.WriteString(centered(width).
			Foreground(theme.Accent).
			Bold(true).
			Render(p.Prompt))
		b.WriteString("\n\n")
	}

	if len(p.Choices) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		b.WriteString("\n")
		b.WriteString(centered(width).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(p.Choices))))
	} else {
		b.WriteString(centered(width).Render("Answer: " + s.input.View()))
	}

	return b.String()
}

// clock renders the remaining time, or the elapsed time when untimed.
func (s *SessionScreen) clock() string {
	d := s.state.Elapsed
	if s.state.Plan.Duration > 0 {
		d = max(s.state.Plan.Duration-s.state.Elapsed, 0)
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// renderFeedback renders the graded answer with diagnosis, any unlocked
// topics and a tutor lesson.
func (s *SessionScreen) renderFeedback(width, height int) string {
	state := s.state
	q := state.CurrentQuestion
	textWidth := min(width-8, 70)

	var b strings.Builder
	b.WriteString("\n")

	if state.LastAnswerCorrect {
		b.WriteString(centered(width).Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(centered(width).Foreground(theme.Error).Bold(true).Render("Not quite"))
	}
	b.WriteString("\n\n")

	if res := state.LastResult; res != nil && q != nil {
		var lines []string
		for _, pr := range res.Parts {
			part, _ := q.Part(pr.Label)
			label := part.Prompt
			if label == "" {
				label = pr.Label
			}
			if pr.Correct {
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).
					Render(fmt.Sprintf("✓ %s: %s", label, part.Answer)))
				continue
			}
			given := pr.Given
			if given == "" {
				given = "(blank)"
			}
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("✗ %s: %s, answer %s", label, given, part.Answer)))
		}
		block := lipgloss.NewStyle().Width(textWidth).Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	if d := state.LastDiagnosis; d != nil && d.Category == diagnosis.CategoryMisconception {
		if m := diagnosis.GetMisconception(d.MisconceptionID); m != nil {
			b.WriteString(centered(width).
				Foreground(theme.Accent).
				Render("Watch out: " + m.Label))
			b.WriteString("\n\n")
		}
	}

	if q != nil && q.Explanation != "" {
		exp := lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if c := state.Completion; c != nil {
		b.WriteString(centered(width).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Topic complete: %s", c.Topic.Name)))
		b.WriteString("\n")
		for _, t := range c.Unlocked {
			b.WriteString(centered(width).
				Foreground(theme.Secondary).
				Render("🔓 " + t.Name))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.lesson != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderLesson(textWidth+4)))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (s *SessionScreen) renderLesson(cw int) string {
	l := s.lesson
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Verdigris).Bold(true).Render("Tutor: " + l.Title))
	b.WriteString("\n\n")
	b.WriteString(l.Explanation)
	if l.WorkedExample != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Left).Render(l.WorkedExample))
	}
	if l.Tip != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Tip: " + l.Tip))
	}
	return components.Card(b.String(), cw, true)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render("You will see a summary of what you answered."))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Success).Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return centered(width).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
