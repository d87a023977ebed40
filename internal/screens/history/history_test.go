package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/store"
)

// fakeRepo implements store.ResultRepo for testing.
type fakeRepo struct {
	results    []store.AssessmentResultRecord
	summaries  []store.TrackSummary
	err        error
	summaryErr error
	limit      int
	ctxErr     error
}

func (f *fakeRepo) AppendResult(_ context.Context, _ store.AssessmentResultData) error {
	return nil
}

func (f *fakeRepo) QueryResults(ctx context.Context, _ string, opts store.QueryOpts) ([]store.AssessmentResultRecord, error) {
	f.limit = opts.Limit
	f.ctxErr = ctx.Err()
	return f.results, f.err
}

func (f *fakeRepo) SummaryByTrack(_ context.Context) ([]store.TrackSummary, error) {
	return f.summaries, f.summaryErr
}

func sampleRepo() *fakeRepo {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &fakeRepo{
		results: []store.AssessmentResultRecord{
			{ID: 2, Timestamp: ts, AssessmentResultData: store.AssessmentResultData{
				Track: "dele", Score: 75, LevelLabel: "DELE B1", Vocabulary: "~3000 words",
				Correct: 15, Total: 20, DurationSecs: 301,
				Levels: []store.AssessmentLevel{{Level: "A1", Correct: 4, Total: 4}, {Level: "B1", Correct: 3, Total: 4}},
			}},
			{ID: 1, Timestamp: ts.Add(-time.Hour), AssessmentResultData: store.AssessmentResultData{
				Track: "hsk", Score: 40, LevelLabel: "HSK 1", Vocabulary: "~150 words",
				Correct: 12, Total: 30, DurationSecs: 420,
			}},
		},
		summaries: []store.TrackSummary{
			{Track: "dele", Attempts: 1, BestScore: 75, AvgScore: 75},
			{Track: "hsk", Attempts: 1, BestScore: 40, AvgScore: 40},
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestHistoryScreen_LoadsResults(t *testing.T) {
	repo := sampleRepo()
	s := New(repo)
	if !strings.Contains(s.View(100, 40), "Loading history") {
		t.Error("expected loading state before results arrive")
	}

	load(t, s)
	if repo.limit != Limit {
		t.Errorf("limit = %d, want %d", repo.limit, Limit)
	}

	view := s.View(120, 40)
	for _, want := range []string{"DELE (Spanish)", "DELE B1", "HSK 1", "5:01", "best 75%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_Expand(t *testing.T) {
	s := New(sampleRepo())
	load(t, s)

	if strings.Contains(s.View(120, 40), "~3000 words") {
		t.Fatal("details should be collapsed")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(120, 40)
	if !strings.Contains(view, "~3000 words") || !strings.Contains(view, "DELE A1") {
		t.Error("expected vocabulary and level details after enter")
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := New(sampleRepo())
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&fakeRepo{})
	load(t, s)
	if !strings.Contains(s.View(100, 40), "No results yet") {
		t.Error("expected empty state")
	}
}

func TestHistoryScreen_Errors(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("database is locked")})
	load(t, s)
	if !strings.Contains(s.View(100, 40), "database is locked") {
		t.Error("expected error in view")
	}

	repo := sampleRepo()
	repo.summaryErr = errors.New("boom")
	s = New(repo)
	load(t, s)
	view := s.View(120, 40)
	if !strings.Contains(view, "DELE B1") || strings.Contains(view, "best 75%") {
		t.Error("summary failure should still list results without the summary")
	}
}

func TestHistoryScreen_CloseCancelsLoad(t *testing.T) {
	repo := sampleRepo()
	s := New(repo)
	cmd := s.Init()

	s.Close()
	cmd()

	if !errors.Is(repo.ctxErr, context.Canceled) {
		t.Fatalf("expected the load to see a canceled context, got %v", repo.ctxErr)
	}
}
