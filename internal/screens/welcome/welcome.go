// Package welcome is the track picker the app starts on and returns to.
package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/track"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Options configures the welcome screen.
type Options struct {
	// Error is shown under the menu, e.g. why the last quiz failed to load.
	Error string

	// Notice is a dimmed status line, e.g. "Pronunciation unavailable".
	Notice string

	// Questions is the batch size shown in the subtitle.
	Questions int

	// History builds the history screen. Nil hides the menu entry.
	History func() screen.Screen
}

// WelcomeScreen lets the learner pick a track.
type WelcomeScreen struct {
	opts Options
	menu components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New(opts Options) *WelcomeScreen {
	var items []components.MenuItem
	for _, t := range track.All() {
		items = append(items, components.MenuItem{
			Label:  t.Name,
			Detail: levelRange(t),
			Action: startQuiz(t),
		})
	}
	if opts.History != nil {
		items = append(items, components.MenuItem{
			Label:  "Past results",
			Action: func() tea.Cmd { return pushHistory(opts.History) },
		})
	}
	return &WelcomeScreen{opts: opts, menu: components.NewMenu(items)}
}

func startQuiz(t *track.Track) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return screen.StartQuizMsg{Track: t} }
	}
}

func pushHistory(factory func() screen.Screen) tea.Cmd {
	s := factory()
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func levelRange(t *track.Track) string {
	if len(t.Levels) == 0 {
		return ""
	}
	return fmt.Sprintf("%s to %s", t.Label(t.Levels[0]), t.Label(t.Levels[len(t.Levels)-1]))
}

func (w *WelcomeScreen) Init() tea.Cmd { return nil }

func (w *WelcomeScreen) Title() string { return "Choose a test" }

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "1-3", Description: "Quick start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch k := kmsg.String(); k {
		case "1", "2", "3":
			all := track.All()
			if i := int(k[0] - '1'); i < len(all) {
				return w, startQuiz(all[i])()
			}
		}
	}

	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	n := w.opts.Questions
	if n <= 0 {
		n = 30
	}

	sections := []string{
		RenderBanner(width),
		"",
		theme.Body.Bold(true).Render("How big is your vocabulary?"),
		theme.Subtitle.Render(fmt.Sprintf("%d questions, levelled from beginner to advanced", n)),
		"",
		w.menu.View(),
	}

	if w.opts.Error != "" {
		sections = append(sections, theme.ErrorText.Width(min(width-4, 70)).Render(w.opts.Error))
	}
	if w.opts.Notice != "" {
		sections = append(sections, theme.Hint.Render(w.opts.Notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
