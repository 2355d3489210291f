package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stave/internal/quiz"
	"github.com/abhisek/stave/internal/router"
	"github.com/abhisek/stave/internal/screen"
	"github.com/abhisek/stave/internal/screens/notice"
	sessionscreen "github.com/abhisek/stave/internal/screens/session"
	"github.com/abhisek/stave/internal/ui/layout"
)

// backScreen claims Esc.
type backScreen struct {
	*notice.NoticeScreen
	escs int
}

func (b *backScreen) HandlesBack() bool { return true }

func (b *backScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		b.escs++
	}
	return b, nil
}

func (b *backScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Quit session"}}
}

func testModel() AppModel {
	return newAppModel(Options{Session: sessionscreen.Deps{Registry: quiz.NewRegistry()}})
}

func TestNewAppModel_SharesDone(t *testing.T) {
	m := testModel()
	if m.done == nil {
		t.Fatal("done map should be created")
	}
	if m.total == 0 {
		t.Error("expected catalog topics")
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestEsc_PopsWhenNotHandled(t *testing.T) {
	m := testModel()
	m.router.Push(notice.New("Test", "hello"))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop")
	}
}

func TestEsc_AtRootDoesNothing(t *testing.T) {
	m := testModel()
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc on the home screen should do nothing")
	}
}

func TestEsc_BackHandlerReceivesKey(t *testing.T) {
	m := testModel()
	bs := &backScreen{NoticeScreen: notice.New("Session", "")}
	m.router.Push(bs)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if bs.escs != 1 {
		t.Errorf("esc reached the screen %d times, want 1", bs.escs)
	}
	if m.router.Depth() != 2 {
		t.Error("the screen should not be popped")
	}
}

func TestFooterHints(t *testing.T) {
	m := testModel()
	if hints := m.footerHints(m.router.Active()); len(hints) != 3 {
		t.Errorf("home hints = %d, want 3", len(hints))
	}

	bs := &backScreen{NoticeScreen: notice.New("Session", "")}
	m.router.Push(bs)
	hints := m.footerHints(bs)
	if len(hints) != 2 || hints[0].Description != "Quit session" {
		t.Errorf("hints = %+v", hints)
	}

	m.router.Push(notice.New("Other", ""))
	if hints := m.footerHints(m.router.Active()); len(hints) != 2 || hints[0].Key != "Esc" {
		t.Errorf("generic hints = %+v", hints)
	}
}

func TestView_BeforeResize(t *testing.T) {
	m := testModel()
	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}
