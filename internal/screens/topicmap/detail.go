package topicmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/catalog"
	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/router"
	"github.com/abhisek/stave/internal/screen"
	sessionscreen "github.com/abhisek/stave/internal/screens/session"
	"github.com/abhisek/stave/internal/session"
	"github.com/abhisek/stave/internal/ui/components"
	"github.com/abhisek/stave/internal/ui/layout"
	"github.com/abhisek/stave/internal/ui/theme"
)

// TopicDetailScreen shows one topic and starts a focused session on it.
type TopicDetailScreen struct {
	topic    catalog.Topic
	deps     sessionscreen.Deps
	practise components.Button
}

var _ screen.Screen = (*TopicDetailScreen)(nil)
var _ screen.KeyHintProvider = (*TopicDetailScreen)(nil)

func newTopicDetail(topic catalog.Topic, deps sessionscreen.Deps) *TopicDetailScreen {
	d := &TopicDetailScreen{topic: topic, deps: deps}
	d.practise = components.NewButton("Practise this topic", "p", func() tea.Cmd {
		next := sessionscreen.New(deps, session.PlanRequest{Mode: session.ModeKind, Kind: topic.Kind})
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	})
	return d
}

func (d *TopicDetailScreen) Init() tea.Cmd { return nil }
func (d *TopicDetailScreen) Title() string { return d.topic.Name }

func (d *TopicDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.practise, cmd = d.practise.Update(msg)
	return d, cmd
}

func (d *TopicDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/P", Description: "Practise"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *TopicDetailScreen) View(width, height int) string {
	t := d.topic
	state := catalog.State(t.Kind, d.deps.Done)
	contentWidth := min(width-8, 70)

	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", state.Icon(), t.Name)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + state.Label()))
	b.WriteString("\n\n")

	if t.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(t.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.Render("  Section:  ") + valStyle.Render(quiz.SectionDisplayName(t.Section)) + "\n")
	b.WriteString(dimStyle.Render("  Level:    ") + valStyle.Render(t.Level.String()) + "\n")
	b.WriteString(dimStyle.Render("  Kind:     ") + valStyle.Render(string(t.Kind)) + "\n")
	if len(t.Keywords) > 0 {
		b.WriteString(dimStyle.Render("  Keywords: ") + valStyle.Render(strings.Join(t.Keywords, ", ")) + "\n")
	}
	b.WriteString("\n")

	if len(t.Prerequisites) > 0 {
		b.WriteString(heading.Render("  Prerequisites"))
		b.WriteString("\n")
		for _, k := range t.Prerequisites {
			icon, style := "○", dimStyle
			if d.deps.Done[k] {
				icon, style = "●", lipgloss.NewStyle().Foreground(theme.Success)
			}
			b.WriteString(style.Render(fmt.Sprintf("  %s %s", icon, topicName(k))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if deps := catalog.Dependents(t.Kind); len(deps) > 0 {
		b.WriteString(heading.Render("  Unlocks"))
		b.WriteString("\n")
		for _, k := range deps {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → %s", topicName(k))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(d.practise.View())

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}

func topicName(k quiz.Kind) string {
	if t, err := catalog.GetTopic(k); err == nil {
		return t.Name
	}
	return string(k)
}
