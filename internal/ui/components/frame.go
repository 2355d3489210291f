package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/ui/theme"
)

// ContentWidth is the inner width shared by every block on a framed
// screen, between 20 and 60 columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// ScoreFrame centres content inside a double border the size of the
// screen.
func ScoreFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card boxes content at content width cw. The border takes the accent
// colour when highlight is set.
func Card(content string, cw int, highlight bool) string {
	border := theme.Border
	if highlight {
		border = theme.Verdigris
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Padding(1, 2).
		Render(content)
}

// MenuButton renders a fixed-width menu entry.
func MenuButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Brass).
			BorderForeground(theme.Brass).
			Render("♪ " + label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
