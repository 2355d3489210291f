// Package bank browses the questions saved in the question bank.
package bank

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/stave/internal/router"
	"github.com/abhisek/stave/internal/screen"
	"github.com/abhisek/stave/internal/store"
	"github.com/abhisek/stave/internal/ui/layout"
	"github.com/abhisek/stave/internal/ui/theme"
)

// pageSize is the number of recent questions listed.
const pageSize = 50

type bankLoadedMsg struct {
	Records []store.QuestionRecord
	Err     error
}

// BankScreen lists banked questions, newest first.
type BankScreen struct {
	repo     store.QuestionRepo
	records  []store.QuestionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string

	// now is stubbed in tests.
	now func() time.Time
}

var _ screen.Screen = (*BankScreen)(nil)
var _ screen.KeyHintProvider = (*BankScreen)(nil)

// New creates a BankScreen over repo.
func New(repo store.QuestionRepo) *BankScreen {
	return &BankScreen{
		repo:     repo,
		expanded: make(map[int]bool),
		now:      time.Now,
	}
}

func (s *BankScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		recs, err := repo.List(context.Background(), store.QuestionFilter{Limit: pageSize})
		return bankLoadedMsg{Records: recs, Err: err}
	}
}

func (s *BankScreen) Title() string {
	return "Question Bank"
}

func (s *BankScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BankScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *BankScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading the question bank...")
	}
	if len(s.records) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The bank is empty. Questions are saved as you practise.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%-28s  %-14s  %s",
			prefix, rec.Title, humanize.RelTime(rec.CreatedAt, s.now(), "ago", "from now"), shortID(rec.ID))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !rec.Replayable() {
			style = style.Foreground(theme.TextDim)
		}
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderDetail(rec, min(width-8, 70))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderDetail(rec store.QuestionRecord, w int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var b strings.Builder

	b.WriteString(dim.Render(fmt.Sprintf("kind %s · seed %d · engine %s", rec.Kind, rec.Seed, rec.EngineVersion)))
	b.WriteString("\n")

	q := rec.Question
	if q == nil {
		return lipgloss.NewStyle().Width(w).PaddingLeft(4).Render(b.String())
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(q.Prompt))
	b.WriteString("\n")
	if len(q.Staff) > 0 {
		b.WriteString(theme.Staff.Render(strings.Join(q.Staff, "\n")))
		b.WriteString("\n")
	}
	for _, p := range q.Parts {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
			Render(fmt.Sprintf("%s: %s", p.Prompt, p.Answer)))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(w).PaddingLeft(4).Render(b.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
