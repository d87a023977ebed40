package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/pronounce"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/history"
	"github.com/abhisek/lexiz/internal/screens/loading"
	quizscreen "github.com/abhisek/lexiz/internal/screens/quiz"
	resultsscreen "github.com/abhisek/lexiz/internal/screens/results"
	"github.com/abhisek/lexiz/internal/screens/welcome"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/track"
)

// fakeGenerator implements quizgen.Generator for testing.
type fakeGenerator struct {
	questions []quizgen.Question
	err       error
	calls     int
}

func (f *fakeGenerator) Generate(_ context.Context, _ *track.Track) ([]quizgen.Question, error) {
	f.calls++
	return f.questions, f.err
}

// memResults implements store.ResultRepo for testing.
type memResults struct {
	mu      sync.Mutex
	saved   []store.AssessmentResultData
	failErr error
}

func (r *memResults) AppendResult(_ context.Context, data store.AssessmentResultData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.saved = append(r.saved, data)
	return nil
}

func (r *memResults) QueryResults(_ context.Context, _ string, _ store.QueryOpts) ([]store.AssessmentResultRecord, error) {
	return nil, nil
}

func (r *memResults) SummaryByTrack(_ context.Context) ([]store.TrackSummary, error) {
	return nil, nil
}

func twoQuestions() []quizgen.Question {
	return []quizgen.Question{
		{Text: "学习 (xuéxí)", Options: []string{"to eat", "to study", "to sleep", "to run"}, Answer: "to study", Level: "1"},
		{Text: "朋友 (péngyou)", Options: []string{"friend", "teacher", "doctor", "student"}, Answer: "friend", Level: "1"},
	}
}

func newModel(gen quizgen.Generator, repo store.ResultRepo) *AppModel {
	sink := audio.NewSilentSink(audio.SampleRate)
	sink.Speed = 0
	opts := Options{
		Generator:  gen,
		Pronouncer: pronounce.New(nil),
		Mixer:      audio.NewMixer(sink, 0.5),
		Volume:     0.5,
		Questions:  2,
	}
	if repo != nil {
		opts.Results = repo
	}
	return New(opts)
}

func hsk(t *testing.T) *track.Track {
	t.Helper()
	tr, err := track.Get(track.HSK)
	require.NoError(t, err)
	return tr
}

// startAndLoad walks the model from welcome into a running quiz.
func startAndLoad(t *testing.T, m *AppModel) {
	t.Helper()
	m.Update(screen.StartQuizMsg{Track: hsk(t)})
	require.Equal(t, PhaseLoading, m.Phase())
	_, ok := m.router.Active().(*loading.LoadingScreen)
	require.True(t, ok, "expected loading screen")

	m.Update(m.load(m.ctx, m.gen, m.track)())
	require.Equal(t, PhaseQuiz, m.Phase())
}

func TestStartsOnWelcome(t *testing.T) {
	m := newModel(&fakeGenerator{}, nil)
	assert.Equal(t, PhaseWelcome, m.Phase())
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, m.Runner().Volume(), 1e-9)
}

func TestLoadSuccessStartsQuiz(t *testing.T) {
	gen := &fakeGenerator{questions: twoQuestions()}
	m := newModel(gen, nil)

	startAndLoad(t, m)

	assert.Equal(t, 1, gen.calls)
	_, ok := m.router.Active().(*quizscreen.QuizScreen)
	assert.True(t, ok, "expected quiz screen")
	assert.Equal(t, 2, m.Runner().Total())
	assert.NotEmpty(t, m.sessionID)
}

func TestLoadFailureReturnsToWelcomeWithMessage(t *testing.T) {
	gen := &fakeGenerator{err: &quizgen.UserError{
		Message: "Could not generate questions. Please check your connection and API key, then try again.",
		Err:     errors.New("timeout"),
	}}
	m := newModel(gen, nil)

	m.Update(screen.StartQuizMsg{Track: hsk(t)})
	m.Update(m.load(m.ctx, m.gen, m.track)())

	assert.Equal(t, PhaseWelcome, m.Phase())
	view := m.router.View(100, 40)
	assert.Contains(t, view, "Could not generate questions.")
}

func TestEmptyBatchReturnsToWelcome(t *testing.T) {
	m := newModel(&fakeGenerator{}, nil)

	m.Update(screen.StartQuizMsg{Track: hsk(t)})
	m.Update(m.load(m.ctx, m.gen, m.track)())

	assert.Equal(t, PhaseWelcome, m.Phase())
	assert.Contains(t, m.router.View(100, 40), "No usable questions")
}

func TestStaleLoadIgnoredAfterCancel(t *testing.T) {
	m := newModel(&fakeGenerator{questions: twoQuestions()}, nil)

	m.Update(screen.StartQuizMsg{Track: hsk(t)})
	pending := m.load(m.ctx, m.gen, m.track)
	ctx := m.ctx

	m.Update(screen.RestartMsg{})
	assert.Equal(t, PhaseWelcome, m.Phase())
	assert.Error(t, ctx.Err(), "restart should cancel the load context")

	m.Update(pending())
	assert.Equal(t, PhaseWelcome, m.Phase())
	assert.Equal(t, 0, m.Runner().Total())
}

func TestNoGeneratorReportsMissingKey(t *testing.T) {
	m := New(Options{Mixer: audio.NewMixer(audio.NewSilentSink(audio.SampleRate), 0.8)})

	m.Update(screen.StartQuizMsg{Track: hsk(t)})
	m.Update(m.load(m.ctx, m.gen, m.track)())

	assert.Equal(t, PhaseWelcome, m.Phase())
	assert.Contains(t, m.router.View(100, 40), "No API key is configured.")
}

func TestQuizDoneShowsResultsAndSaves(t *testing.T) {
	repo := &memResults{}
	m := newModel(&fakeGenerator{questions: twoQuestions()}, repo)
	startAndLoad(t, m)

	m.Runner().SelectIndex(1)
	m.Runner().Advance()
	m.Runner().SelectIndex(2)
	m.Runner().Advance()

	_, cmd := m.Update(screen.QuizDoneMsg{})
	assert.Equal(t, PhaseResults, m.Phase())
	_, ok := m.router.Active().(*resultsscreen.ResultsScreen)
	require.True(t, ok, "expected results screen")

	var saved bool
	for _, msg := range collect(cmd) {
		if sm, ok := msg.(resultsscreen.SavedMsg); ok {
			saved = sm.Err == nil
			m.Update(sm)
		}
	}
	assert.True(t, saved)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "hsk", repo.saved[0].Track)
	assert.Equal(t, 50, repo.saved[0].Score)
	assert.Equal(t, m.sessionID, repo.saved[0].SessionID)
	assert.Contains(t, m.router.View(100, 40), "Saved to history.")
}

func TestQuizDoneIgnoredOutsideQuiz(t *testing.T) {
	m := newModel(&fakeGenerator{}, &memResults{})
	_, cmd := m.Update(screen.QuizDoneMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, PhaseWelcome, m.Phase())
}

func TestRestartFromResults(t *testing.T) {
	m := newModel(&fakeGenerator{questions: twoQuestions()}, nil)
	startAndLoad(t, m)
	session := m.Runner().Session()

	m.Update(screen.QuizDoneMsg{})
	m.Update(screen.RestartMsg{})

	assert.Equal(t, PhaseWelcome, m.Phase())
	assert.Nil(t, m.Runner().Track())
	assert.NotEqual(t, session, m.Runner().Session())
	assert.Empty(t, m.sessionID)
}

func TestEscRoutesToScreensThatHandleIt(t *testing.T) {
	m := newModel(&fakeGenerator{questions: twoQuestions()}, nil)
	startAndLoad(t, m)

	// The quiz screen asks for confirmation instead of being popped.
	m.Update(tea.KeyPressMsg{Code: tea.KeyEsc})
	assert.Equal(t, PhaseQuiz, m.Phase())
	assert.Contains(t, m.router.View(100, 40), "Leave this quiz?")
}

func TestHistoryPushedFromWelcome(t *testing.T) {
	m := newModel(&fakeGenerator{}, &memResults{})

	for range track.All() {
		m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	_, ok := m.router.Active().(*history.HistoryScreen)
	require.True(t, ok, "expected history screen")
	assert.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEsc})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(&fakeGenerator{}, nil)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewFramesActiveScreen(t *testing.T) {
	m := newModel(&fakeGenerator{}, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	content := m.render()
	assert.True(t, strings.Contains(content, "Choose a test"))
	assert.True(t, strings.Contains(content, "Vol 50%"))
	assert.True(t, m.View().AltScreen)
}

// collect runs cmd and flattens any batch into its messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
