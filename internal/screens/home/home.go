package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/router"
	"github.com/abhisek/stave/internal/screen"
	"github.com/abhisek/stave/internal/screens/bank"
	"github.com/abhisek/stave/internal/screens/notice"
	sessionscreen "github.com/abhisek/stave/internal/screens/session"
	"github.com/abhisek/stave/internal/screens/topicmap"
	"github.com/abhisek/stave/internal/session"
	"github.com/abhisek/stave/internal/ui/components"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps sessionscreen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Sessions started from it share deps.
func New(deps sessionscreen.Deps) *HomeScreen {
	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	startSession := func(mode session.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			return push(sessionscreen.New(deps, session.PlanRequest{Mode: mode}))
		}
	}

	items := []components.MenuItem{
		{Label: "LEARNING PATH", Key: "l", Action: startSession(session.ModePath)},
		{Label: "MIXED PRACTICE", Key: "m", Action: startSession(session.ModeMixed)},
		{Label: "TOPIC MAP", Key: "t", Action: func() tea.Cmd {
			return push(topicmap.New(deps))
		}},
		{Label: "QUESTION BANK", Key: "b", Action: func() tea.Cmd {
			if deps.Bank == nil {
				return push(notice.New("Question Bank", "The question bank is not open.\nRun stave with a writable --db path."))
			}
			return push(bank.New(deps.Bank))
		}},
		{Label: "QUIT", Key: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)
	done, total := h.progress()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(done, total), cw))
	}
	sections = append(sections, renderStatsBar(done, total, h.deps.Lessons != nil, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menu.Labels(), h.menu.Selected, cw))
	}

	return components.ScoreFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// progress counts the topics finished in this run.
func (h *HomeScreen) progress() (done, total int) {
	for _, t := range catalog.AllTopics() {
		total++
		if h.deps.Done[t.Kind] {
			done++
		}
	}
	return done, total
}

func mascotFor(done, total int) MascotVariant {
	switch {
	case total > 0 && done == total:
		return MascotCelebrating
	case done > 0:
		return MascotPlaying
	default:
		return MascotIdle
	}
}
