package components

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/ui/theme"
)

// Button runs OnPress on Enter or on its hotkey.
type Button struct {
	Label   string
	Hotkey  string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates an active button. hotkey may be empty.
func NewButton(label, hotkey string, onPress func() tea.Cmd) Button {
	return Button{Label: label, Hotkey: hotkey, Active: true, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil {
		return b, nil
	}
	keys := []string{"enter"}
	if b.Hotkey != "" {
		keys = append(keys, b.Hotkey)
	}
	if slices.Contains(keys, kmsg.String()) {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	label := "▸ " + b.Label
	if !b.Active {
		return theme.ButtonInactive.Render(label)
	}
	view := theme.ButtonActive.Render(label)
	if b.Hotkey != "" {
		view += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  [" + b.Hotkey + "]")
	}
	return view
}
