package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stave/internal/screen"
)

type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func titles(r *Router) string {
	names := make([]string, len(r.stack))
	for i, s := range r.stack {
		names[i] = s.Title()
	}
	return strings.Join(names, ",")
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{"push", []tea.Msg{PushScreenMsg{&stubScreen{title: "b"}}}, "home,b"},
		{"push then pop", []tea.Msg{PushScreenMsg{&stubScreen{title: "b"}}, PopScreenMsg{}}, "home"},
		{"pop keeps root", []tea.Msg{PopScreenMsg{}, PopScreenMsg{}}, "home"},
		{"replace root", []tea.Msg{ReplaceScreenMsg{&stubScreen{title: "b"}}}, "b"},
		{"replace top", []tea.Msg{
			PushScreenMsg{&stubScreen{title: "session"}},
			ReplaceScreenMsg{&stubScreen{title: "summary"}},
		}, "home,summary"},
		{"pop to root", []tea.Msg{
			PushScreenMsg{&stubScreen{title: "map"}},
			PushScreenMsg{&stubScreen{title: "detail"}},
			PushScreenMsg{&stubScreen{title: "summary"}},
			PopToRootMsg{},
		}, "home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&stubScreen{title: "home"})
			for _, m := range tt.msgs {
				r.Update(m)
			}
			if got := titles(r); got != tt.want {
				t.Errorf("stack = %q, want %q", got, tt.want)
			}
			if r.Depth() != strings.Count(tt.want, ",")+1 {
				t.Errorf("Depth = %d", r.Depth())
			}
		})
	}
}

func TestPushAndReplaceRunInit(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	pushed := &stubScreen{title: "a"}
	replaced := &stubScreen{title: "b"}

	r.Update(PushScreenMsg{pushed})
	r.Update(ReplaceScreenMsg{replaced})

	if pushed.inits != 1 || replaced.inits != 1 {
		t.Errorf("inits = %d, %d; want 1, 1", pushed.inits, replaced.inits)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	root := &stubScreen{title: "home"}
	top := &stubScreen{title: "top"}
	r := New(root)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if top.updates != 1 || root.updates != 0 {
		t.Errorf("updates root=%d top=%d, want 0 and 1", root.updates, top.updates)
	}
	if got := r.View(80, 24); got != "top" {
		t.Errorf("View = %q", got)
	}
}
