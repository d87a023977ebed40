package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	q, ok := s.runner.Current()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No question loaded."))
	}

	contentWidth := min(width-8, 72)
	var sections []string

	label := ""
	if t := s.runner.Track(); t != nil {
		label = t.Label(q.Level)
	}
	sections = append(sections, components.NewProgressBar(label, s.runner.Index()+1, s.runner.Total(), contentWidth).View())
	sections = append(sections, "")

	prompt := theme.Prompt.Render(q.Text)
	if q.Context != "" {
		prompt += "\n\n" + theme.Hint.Italic(true).Width(contentWidth-6).Render(q.Context)
	}
	sections = append(sections, theme.Card.Width(contentWidth).Render(prompt))
	sections = append(sections, "")
	sections = append(sections, s.choice.View())

	sections = append(sections, s.renderStatus())
	if s.feedback != nil {
		sections = append(sections, "", renderFeedback(s.feedback))
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderStatus shows the pronunciation state and volume.
func (s *QuizScreen) renderStatus() string {
	var audioLine string
	switch {
	case s.audioErr != "":
		audioLine = theme.ErrorText.Render(s.audioErr)
	case !s.pronouncer.Available():
		audioLine = theme.Disabled.Render("Pronunciation unavailable")
	case s.runner.Playback() == qz.PlaybackLoading:
		audioLine = theme.Hint.Render("♪ Loading audio...")
	case s.runner.Playback() == qz.PlaybackPlaying:
		audioLine = theme.Selected.Render("♪ Playing") + theme.Hint.Render("  (P to stop)")
	default:
		audioLine = theme.Hint.Render("P to hear it")
	}

	volume := theme.Hint.Render(fmt.Sprintf("Volume %d%%", int(s.runner.Volume()*100+0.5)))
	return audioLine + theme.Hint.Render("   ·   ") + volume
}

func renderFeedback(fb *qz.Feedback) string {
	if fb.Correct {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render("Not quite.") + " " +
		theme.Body.Render(fmt.Sprintf("The answer is %q.", fb.Answer))
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(strings.Join([]string{
		theme.Title.Render("Leave this quiz?"),
		"",
		theme.Body.Render("Your answers so far will be discarded."),
		"",
		theme.Hint.Render("Y to leave, N to keep going"),
	}, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
