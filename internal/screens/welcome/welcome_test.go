package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/track"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "history" }
func (s *stubScreen) Title() string                           { return "History" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestEnterStartsSelectedTrack(t *testing.T) {
	w := New(Options{})

	w.Update(specialKey(tea.KeyDown))
	_, cmd := w.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}

	msg, ok := cmd().(screen.StartQuizMsg)
	if !ok {
		t.Fatalf("expected StartQuizMsg, got %T", cmd())
	}
	if msg.Track.ID != track.IELTS {
		t.Errorf("expected IELTS, got %s", msg.Track.ID)
	}
}

func TestNumberKeysQuickStart(t *testing.T) {
	w := New(Options{})

	_, cmd := w.Update(keyPress('3'))
	if cmd == nil {
		t.Fatal("expected a command for quick start")
	}
	msg, ok := cmd().(screen.StartQuizMsg)
	if !ok || msg.Track.ID != track.DELE {
		t.Fatalf("expected DELE StartQuizMsg, got %#v", cmd())
	}
}

func TestHistoryEntryPushesScreen(t *testing.T) {
	calls := 0
	w := New(Options{History: func() screen.Screen {
		calls++
		return &stubScreen{}
	}})

	for i := 0; i < len(track.All()); i++ {
		w.Update(specialKey(tea.KeyDown))
	}
	_, cmd := w.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command for history")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if calls != 1 {
		t.Errorf("expected factory called once, got %d", calls)
	}
}

func TestHistoryHiddenWithoutFactory(t *testing.T) {
	w := New(Options{})
	if strings.Contains(w.View(100, 40), "Past results") {
		t.Error("history entry should be hidden without a factory")
	}
}

func TestViewShowsError(t *testing.T) {
	w := New(Options{Error: "No API key is configured."})
	view := w.View(100, 40)
	if !strings.Contains(view, "No API key is configured.") {
		t.Error("expected error message in view")
	}
	for _, tr := range track.All() {
		if !strings.Contains(view, tr.Name) {
			t.Errorf("expected %q in view", tr.Name)
		}
	}
}
