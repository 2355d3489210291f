// Package screen defines what the router stacks. Screens draw only their
// content area; the app adds the header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stave/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider replaces the footer's generic hints with the screen's
// own. The app always appends Ctrl+C.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler screens receive Esc while HandlesBack reports true. Others
// are popped by the app on Esc.
type BackHandler interface {
	HandlesBack() bool
}
