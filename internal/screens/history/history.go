// Package history lists past assessment results.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/track"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Limit is the number of results loaded.
const Limit = 50

type historyLoadedMsg struct {
	Results   []store.AssessmentResultRecord
	Summaries []store.TrackSummary
	Err       error
}

// HistoryScreen displays past results with a per-track summary.
type HistoryScreen struct {
	ctx       context.Context
	cancel    context.CancelFunc
	repo      store.ResultRepo
	results   []store.AssessmentResultRecord
	summaries []store.TrackSummary
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.EscapeHandler = (*HistoryScreen)(nil)
var _ screen.Closer = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.ResultRepo) *HistoryScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &HistoryScreen{
		ctx:      ctx,
		cancel:   cancel,
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	ctx := s.ctx
	return func() tea.Msg {
		results, err := s.repo.QueryResults(ctx, "", store.QueryOpts{Limit: Limit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// The summary is optional; the list is still useful without it.
		summaries, err := s.repo.SummaryByTrack(ctx)
		if err != nil {
			return historyLoadedMsg{Results: results}
		}
		return historyLoadedMsg{Results: results, Summaries: summaries}
	}
}

// Close abandons a load still in flight.
func (s *HistoryScreen) Close() { s.cancel() }

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) HandlesEscape() bool { return true }

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.summaries = msg.Summaries
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Take a test!")
	}

	center := func(str string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, str) }

	var b strings.Builder
	b.WriteString("\n")

	if len(s.summaries) > 0 {
		var parts []string
		for _, sum := range s.summaries {
			parts = append(parts, fmt.Sprintf("%s: %d tests, best %d%%, avg %.0f%%",
				trackName(sum.Track), sum.Attempts, sum.BestScore, sum.AvgScore))
		}
		b.WriteString(center(theme.Hint.Render(strings.Join(parts, "   ·   "))))
		b.WriteString("\n\n")
	}

	for i, r := range s.results {
		dateStr := r.Timestamp.Local().Format("Jan 02, 2006 15:04")
		durationStr := fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-16s %-12s %3d%%  %d/%d  %s",
			prefix, dateStr, trackName(r.Track), r.LevelLabel, r.Score, r.Correct, r.Total, durationStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(center(style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(r, width))
		}
	}

	return b.String()
}

// renderDetails lists the per-level tally of one result.
func (s *HistoryScreen) renderDetails(r store.AssessmentResultRecord, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		dim.Render("    Vocabulary: "+r.Vocabulary)))
	b.WriteString("\n")

	t, _ := track.Get(track.ID(r.Track))
	for _, lv := range r.Levels {
		label := lv.Level
		if t != nil {
			label = t.Label(track.Level(lv.Level))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render(fmt.Sprintf("    %-10s %d/%d", label, lv.Correct, lv.Total))))
		b.WriteString("\n")
	}
	return b.String()
}

func trackName(id string) string {
	if t, err := track.Get(track.ID(id)); err == nil {
		return t.Name
	}
	return id
}
