package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/ui/theme"
)

// ScoreBar shows correct answers out of attempted ones as a bar coloured
// by accuracy, followed by "correct/attempted".
type ScoreBar struct {
	Label     string
	Correct   int
	Attempted int
	Width     int
}

// NewScoreBar creates a score bar of the given total width.
func NewScoreBar(label string, correct, attempted, width int) ScoreBar {
	return ScoreBar{Label: label, Correct: correct, Attempted: attempted, Width: width}
}

func (s ScoreBar) accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

func (s ScoreBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label)
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", s.Correct, s.Attempted))

	barWidth := max(s.Width-lipgloss.Width(label)-lipgloss.Width(count)-4, 4)
	filled := min(int(float64(barWidth)*s.accuracy()), barWidth)

	bar := lipgloss.NewStyle().Foreground(theme.ScoreColor(s.accuracy())).Render(strings.Repeat("▰", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("▱", barWidth-filled))

	return label + "  " + bar + "  " + count
}
