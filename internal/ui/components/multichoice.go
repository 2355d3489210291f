package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/ui/theme"
)

// MultiChoice is a single-answer choice selector. Options are picked with
// the arrow keys and Enter, or directly with their number key.
type MultiChoice struct {
	Options  []string
	Selected int

	// Chosen is the submitted option, -1 before submission.
	Chosen int

	// Correct is revealed after grading, -1 until then.
	Correct int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted() {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Chosen = m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
				m.Chosen = i
			}
		}
	}
	return m, nil
}

// Submitted reports whether an option has been chosen.
func (m MultiChoice) Submitted() bool {
	return m.Chosen >= 0
}

// Value returns the chosen option text, or "" before submission.
func (m MultiChoice) Value() string {
	if !m.Submitted() {
		return ""
	}
	return m.Options[m.Chosen]
}

// Reveal marks the option with text answer as correct.
func (m *MultiChoice) Reveal(answer string) {
	for i, o := range m.Options {
		if o == answer {
			m.Correct = i
			return
		}
	}
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Correct >= 0 && i == m.Correct:
			style = style.Foreground(theme.Success).Bold(true)
		case m.Submitted() && i == m.Chosen:
			style = style.Foreground(theme.Error).Bold(true)
		case m.Submitted():
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
