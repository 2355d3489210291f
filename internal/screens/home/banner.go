package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/ui/components"
	"github.com/abhisek/stave/internal/ui/theme"
)

const titleFull = ` ███████╗████████╗ █████╗ ██╗   ██╗███████╗
 ██╔════╝╚══██╔══╝██╔══██╗██║   ██║██╔════╝
 ███████╗   ██║   ███████║██║   ██║█████╗
 ╚════██║   ██║   ██╔══██║╚██╗ ██╔╝██╔══╝
 ███████║   ██║   ██║  ██║ ╚████╔╝ ███████╗
 ╚══════╝   ╚═╝   ╚═╝  ╚═╝  ╚═══╝  ╚══════╝`

const titleCompact = "𝄞  S · T · A · V · E"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Brass).Bold(true).Render(art))
}

// renderStatsBar shows topic progress and whether the tutor is available.
func renderStatsBar(done, total int, tutor bool, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.Brass).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Verdigris).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	tutorText := dimStyle.Render("TUTOR OFF")
	if tutor {
		tutorText = tutorStyle.Render("TUTOR ON")
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			doneStyle.Render(fmt.Sprintf("♪%d/%d", done, total)),
			tutorText,
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			doneStyle.Render(fmt.Sprintf("♪ %d/%d TOPICS", done, total)),
			tutorText,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Verdigris).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.MenuButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders the menu as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Brass).
				Bold(true).
				Render(" ▸ " + label + " ")
			continue
		}
		lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
