package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Nothing practised yet
	MascotPlaying                          // Some topics done
	MascotCelebrating                      // Every topic done
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ♩ ♪ │
└─────┘`

const mascotPlaying = `┌─────┐ ♫
│ ◉ ◉ │
│  ◡  │
│ ♩ ♪ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ◡  │
│ ♬ ♬ │
└─╥═╥─┘
  ╚═╝`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotPlaying:
		art, fg = mascotPlaying, theme.Verdigris
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Brass
	}

	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
