package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stave/internal/theory"
	"github.com/abhisek/stave/internal/ui/theme"
)

// InputMode selects what an AnswerInput accepts.
type InputMode int

const (
	InputNumber InputMode = iota
	InputPitch
)

// pitchRunes are the keys a spelled pitch can contain.
const pitchRunes = "ABCDEFGabcdefg#x♯♭𝄪𝄫0123456789-"

// AnswerInput is a one-line typed answer: a whole number or a spelled
// pitch such as "Eb4". Keys that cannot belong to the answer are dropped.
type AnswerInput struct {
	Model textinput.Model
	Mode  InputMode
}

// NewAnswerInput creates a focused input for mode.
func NewAnswerInput(mode InputMode) AnswerInput {
	ti := textinput.New()
	switch mode {
	case InputNumber:
		ti.Placeholder = "a whole number"
		ti.CharLimit = 6
	case InputPitch:
		ti.Placeholder = "a note such as F#4"
		ti.CharLimit = 8
	}
	ti.Focus()
	return AnswerInput{Model: ti, Mode: mode}
}

func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" && !a.accepts(kmsg.Text) {
		return a, nil
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func (a AnswerInput) accepts(text string) bool {
	allowed := "0123456789"
	if a.Mode == InputPitch {
		allowed = pitchRunes
	}
	for _, r := range text {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

// Value returns the trimmed input.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// Ready reports whether the input is complete enough to submit. A pitch
// must parse; a number must be non-empty.
func (a AnswerInput) Ready() bool {
	v := a.Value()
	if v == "" {
		return false
	}
	if a.Mode == InputPitch {
		_, err := theory.ParsePitch(v)
		return err == nil
	}
	return true
}

// View renders the input. In pitch mode the parsed spelling is echoed
// once it is valid.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.Mode != InputPitch || a.Value() == "" {
		return view
	}
	p, err := theory.ParsePitch(a.Value())
	if err != nil {
		return view + "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("letter, accidental, octave")
	}
	return view + "  " + lipgloss.NewStyle().Foreground(theme.Success).Render("♪ "+p.String())
}
