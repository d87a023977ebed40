// Package loading shows a spinner while a question batch is generated.
package loading

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/track"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// LoadingScreen waits for the app to deliver questions. Esc cancels.
type LoadingScreen struct {
	track     *track.Track
	questions int
	spinner   spinner.Model
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)
var _ screen.EscapeHandler = (*LoadingScreen)(nil)

// New creates a LoadingScreen for a batch of n questions on t.
func New(t *track.Track, n int) *LoadingScreen {
	return &LoadingScreen{
		track:     t,
		questions: n,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (l *LoadingScreen) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *LoadingScreen) Title() string { return "Preparing your test" }

func (l *LoadingScreen) HandlesEscape() bool { return true }

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return l, func() tea.Msg { return screen.RestartMsg{} }
		}
	}
	return l, nil
}

func (l *LoadingScreen) View(width, height int) string {
	lines := []string{
		l.spinner.View() + " " + theme.Body.Bold(true).Render(
			fmt.Sprintf("Writing %d %s questions...", l.questions, l.track.Name)),
		"",
		theme.Hint.Render("This usually takes a few seconds."),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
