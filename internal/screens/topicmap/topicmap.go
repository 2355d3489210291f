// Package topicmap shows the topic graph by section and starts focused
// practice on a topic or a whole section.
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
	"github.com/abhisek/stave/internal/ui/layout"
	"github.com/abhisek/stave/internal/ui/theme"
)

type rowKind int

const (
	rowSectionHeader rowKind = iota
	rowTopic
)

type row struct {
	kind    rowKind
	section quiz.Section
	topic   *catalog.Topic
}

// TopicMapScreen displays the topic graph organized by section.
type TopicMapScreen struct {
	deps         sessionscreen.Deps
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*TopicMapScreen)(nil)
var _ screen.KeyHintProvider = (*TopicMapScreen)(nil)

// New creates a TopicMapScreen. States are read from deps.Done on every
// render, so topics finished in a session show as done on return.
func New(deps sessionscreen.Deps) *TopicMapScreen {
	var rows []row
	for _, sec := range quiz.AllSections() {
		topics := catalog.BySection(sec)
		if len(topics) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowSectionHeader, section: sec})
		for i := range topics {
			rows = append(rows, row{kind: rowTopic, section: sec, topic: &topics[i]})
		}
	}

	s := &TopicMapScreen{deps: deps, rows: rows}
	for i, r := range s.rows {
		if r.kind == rowTopic {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *TopicMapScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextSection()
		case "shift+tab":
			s.prevSection()
		case "enter":
			return s, s.selectTopic()
		case "s":
			return s, s.practiseSection()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *TopicMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowSectionHeader:
			lines = append(lines, renderSectionHeader(r.section, width))
		case rowTopic:
			lines = append(lines, s.renderTopicRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *TopicMapScreen) Title() string {
	return "Topic Map"
}

func (s *TopicMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Section"},
		{Key: "Enter", Description: "Details"},
		{Key: "S", Description: "Practise section"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping section headers.
func (s *TopicMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTopic {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextSection jumps to the first topic of the next section.
func (s *TopicMapScreen) nextSection() {
	current := s.rows[s.cursor].section
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowTopic && s.rows[i].section != current {
			s.cursor = i
			return
		}
	}
}

// prevSection jumps to the first topic of the previous section.
func (s *TopicMapScreen) prevSection() {
	current := s.rows[s.cursor].section
	target := quiz.Section("")
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowTopic && s.rows[i].section != current {
			target = s.rows[i].section
			break
		}
	}
	if target == "" {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowTopic && r.section == target {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor, and the header above it, in view.
func (s *TopicMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowSectionHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *TopicMapScreen) selectTopic() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowTopic || r.topic == nil {
		return nil
	}
	detail := newTopicDetail(*r.topic, s.deps)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *TopicMapScreen) practiseSection() tea.Cmd {
	sec := s.rows[s.cursor].section
	next := sessionscreen.New(s.deps, session.PlanRequest{Mode: session.ModeSection, Section: sec})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func renderSectionHeader(sec quiz.Section, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(quiz.SectionDisplayName(sec)))
}

func (s *TopicMapScreen) renderTopicRow(r row, selected bool, width int) string {
	if r.topic == nil {
		return ""
	}

	state := catalog.State(r.topic.Kind, s.deps.Done)
	level := r.topic.Level.String()

	const (
		padding    = 4
		iconWidth  = 3
		levelWidth = 10
		labelWidth = 10
		spacing    = 4
	)
	nameWidth := max(width-padding-iconWidth-levelWidth-labelWidth-spacing, 10)

	name := r.topic.Name
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	levelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		levelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = levelStyle
	case state == catalog.StateDone:
		nameStyle = nameStyle.Foreground(theme.Success)
		labelStyle = labelStyle.Foreground(theme.Success)
	case state == catalog.StateAvailable:
		labelStyle = labelStyle.Foreground(theme.Secondary)
	case state == catalog.StateLocked:
		nameStyle = nameStyle.Foreground(theme.TextDim)
		labelStyle = labelStyle.Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		state.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		levelStyle.Render(fmt.Sprintf("%-*s", levelWidth, level)),
		labelStyle.Render(fmt.Sprintf("%9s", state.Label())),
	)
}
