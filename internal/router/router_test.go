package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	closed  int
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) Close()               { s.closed++ }

func TestPushRunsInit(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	history := &stubScreen{title: "history"}
	r.Update(PushScreenMsg{Screen: history})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != history {
		t.Errorf("expected history on top, got %q", r.Active().Title())
	}
	if !history.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopClosesTopScreen(t *testing.T) {
	welcome := &stubScreen{title: "welcome"}
	r := New(welcome)
	history := &stubScreen{title: "history"}
	r.Push(history)

	r.Update(PopScreenMsg{})

	if r.Active() != welcome {
		t.Errorf("expected welcome on top, got %q", r.Active().Title())
	}
	if history.closed != 1 {
		t.Errorf("expected popped screen closed once, got %d", history.closed)
	}
	if welcome.closed != 0 {
		t.Error("root should stay open")
	}
}

func TestPopKeepsRoot(t *testing.T) {
	root := &stubScreen{title: "welcome"}
	r := New(root)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if root.closed != 0 {
		t.Error("root must not be closed by Pop")
	}
}

func TestResetClosesEverything(t *testing.T) {
	screens := []*stubScreen{{title: "results"}, {title: "history"}}
	r := New(screens[0])
	r.Push(screens[1])

	welcome := &stubScreen{title: "welcome"}
	r.Reset(welcome)

	if r.Depth() != 1 || r.Active() != welcome {
		t.Fatalf("expected only welcome on the stack, depth %d", r.Depth())
	}
	if !welcome.initRan {
		t.Error("expected Init() to run on new root")
	}
	for _, s := range screens {
		if s.closed != 1 {
			t.Errorf("%s closed %d times, want 1", s.title, s.closed)
		}
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	bottom := &stubScreen{title: "welcome"}
	r := New(bottom)
	top := &stubScreen{title: "history"}
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if len(top.got) != 1 {
		t.Errorf("expected active screen to get 1 message, got %d", len(top.got))
	}
	if len(bottom.got) != 0 {
		t.Error("screens below the top should not receive messages")
	}
}
