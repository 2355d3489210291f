package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/router"
	"github.com/abhisek/stave/internal/screen"
	"github.com/abhisek/stave/internal/session"
	"github.com/abhisek/stave/internal/ui/components"
	"github.com/abhisek/stave/internal/ui/layout"
	"github.com/abhisek/stave/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.SessionSummary

	// seed replays the session with --seed.
	seed uint64
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.BackHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary, seed uint64) *SummaryScreen {
	return &SummaryScreen{summary: summary, seed: seed}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

// HandlesBack keeps Esc for the summary, which returns to the home screen
// rather than the one below.
func (s *SummaryScreen) HandlesBack() bool { return true }

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "esc", "h":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func() lipgloss.Style {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	}
	cw := min(width-8, 60)
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw, 0)))
	heading := func(b *strings.Builder, title string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
	}

	var b strings.Builder

	b.WriteString(center().Foreground(theme.Primary).Bold(true).Render("𝄞 Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d    Seed: %d", mins, secs, s.seed)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(center().Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	heading(&b, "Topics")
	for _, kr := range sum.KindResults {
		if kr.Attempted == 0 {
			continue
		}
		label := kr.Name
		if kr.Completed {
			label = "★ " + label
		}
		bar := components.NewScoreBar(label, kr.Correct, kr.Attempted, cw)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	if len(sum.Misconceptions) > 0 {
		b.WriteString("\n")
		heading(&b, "To review")
		for _, m := range sum.Misconceptions {
			line := fmt.Sprintf("%s  ×%d", m.Label, m.Count)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
