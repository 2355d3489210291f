// Package theme holds stave's colours and the few shared styles. The
// palette is ink and brass on a dark manuscript page.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#C084FC") // Violet ink
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FB923C") // Sienna
	Success   = lipgloss.Color("#4ADE80")
	Error     = lipgloss.Color("#F87171")
	Text      = lipgloss.Color("#F5F0E6") // Parchment
	TextDim   = lipgloss.Color("#A8A29E") // Pencil
	BgDark    = lipgloss.Color("#1C1917")
	BgCard    = lipgloss.Color("#292524")
	Border    = lipgloss.Color("#57534E")

	Brass     = lipgloss.Color("#EAB308")
	Verdigris = lipgloss.Color("#2DD4BF")
)

// Staff is the block a question's staff lines render in.
var Staff = lipgloss.NewStyle().
	Foreground(Text).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(Border).
	PaddingLeft(2)

var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// ScoreColor grades an accuracy in [0,1]: green from 80%, sienna from
// 50%, red below.
func ScoreColor(accuracy float64) color.Color {
	switch {
	case accuracy >= 0.8:
		return Success
	case accuracy >= 0.5:
		return Accent
	default:
		return Error
	}
}
