// Package results shows the level estimate at the end of a quiz.
package results

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	res "github.com/abhisek/lexiz/internal/results"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/track"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// SavedMsg reports whether the result reached the history store.
type SavedMsg struct {
	Err error
}

// ResultsScreen displays a finished quiz's estimate.
type ResultsScreen struct {
	result  res.Result
	track   *track.Track
	elapsed time.Duration
	history func() screen.Screen

	saved   bool
	saveErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.EscapeHandler = (*ResultsScreen)(nil)

// New creates a ResultsScreen. A nil history factory hides the history key.
func New(result res.Result, t *track.Track, elapsed time.Duration, history func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{result: result, track: t, elapsed: elapsed, history: history}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Results" }

func (s *ResultsScreen) HandlesEscape() bool { return true }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Take another test"}}
	if s.history != nil {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case SavedMsg:
		s.saved = msg.Err == nil
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "r", "esc":
			return s, func() tea.Msg { return screen.RestartMsg{} }
		case "h":
			if s.history != nil {
				h := s.history()
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	center := func(str string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, str) }

	var b strings.Builder

	b.WriteString(center(theme.Hint.Render("Your estimated level")))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Title.Render(r.LevelLabel)))
	b.WriteString("\n")
	b.WriteString(center(theme.Body.Render("Vocabulary: " + r.Vocabulary)))
	b.WriteString("\n\n")

	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60
	stats := fmt.Sprintf("Score: %d%%        Correct: %d/%d        Time: %d:%02d",
		r.Score, r.Correct, r.Total, mins, secs)
	b.WriteString(center(theme.Body.Render(stats)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	b.WriteString(center(theme.Hint.Render("By level")))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth))))
	b.WriteString("\n")

	for _, st := range r.Levels {
		label := string(st.Level)
		if s.track != nil {
			label = s.track.Label(st.Level)
		}
		bar := components.NewProgressBar(fmt.Sprintf("%-9s", label), st.Correct, st.Total, barWidth)
		bar.Fill = levelColor(st)
		b.WriteString(center(bar.View()))
		b.WriteString("\n")
	}

	switch {
	case s.saveErr != nil:
		b.WriteString("\n")
		b.WriteString(center(theme.ErrorText.Render("Couldn't save this result to history.")))
	case s.saved:
		b.WriteString("\n")
		b.WriteString(center(theme.Hint.Render("Saved to history.")))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

// levelColor marks passed levels green and failed ones red.
func levelColor(st res.LevelStat) color.Color {
	if st.Passed() {
		return theme.Success
	}
	return theme.Error
}
