// Package app is the root Bubble Tea model. It owns the quiz runner and
// moves the app through track selection, loading, the quiz and results.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/pronounce"
	qz "github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/results"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/history"
	"github.com/abhisek/lexiz/internal/screens/loading"
	quizscreen "github.com/abhisek/lexiz/internal/screens/quiz"
	resultsscreen "github.com/abhisek/lexiz/internal/screens/results"
	"github.com/abhisek/lexiz/internal/screens/welcome"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/track"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

// saveTimeout bounds writing a finished result to the store.
const saveTimeout = 5 * time.Second

// Phase is the app's position in the quiz flow.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseLoading
	PhaseQuiz
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseQuiz:
		return "quiz"
	case PhaseResults:
		return "results"
	default:
		return "welcome"
	}
}

// Options wires the app's dependencies.
type Options struct {
	Generator  quizgen.Generator
	Pronouncer *pronounce.Client
	Mixer      *audio.Mixer

	// Results stores finished assessments. Nil disables saving and history.
	Results store.ResultRepo

	// Volume is the initial playback gain.
	Volume float64

	// Questions is the batch size the generator was configured with.
	Questions int

	// Notice is shown on the welcome screen, e.g. a missing speech key.
	Notice string
}

// quizLoadedMsg delivers a generated question batch. gen ties it to the
// load that requested it.
type quizLoadedMsg struct {
	gen       uint64
	questions []quizgen.Question
	err       error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	runner *qz.Runner

	phase     Phase
	track     *track.Track
	sessionID string

	// gen counts quiz loads; a late batch from an abandoned load is dropped.
	gen uint64

	// ctx spans one load and the quiz it produces. restart cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// New creates an AppModel on the welcome screen.
func New(opts Options) *AppModel {
	m := &AppModel{
		opts:   opts,
		runner: qz.NewRunner(),
	}
	m.runner.SetVolume(opts.Volume)
	if opts.Mixer != nil {
		opts.Mixer.SetVolume(m.runner.Volume())
	}
	m.router = router.New(m.welcome(""))
	return m
}

func (m *AppModel) welcome(errMsg string) screen.Screen {
	return welcome.New(welcome.Options{
		Error:     errMsg,
		Notice:    m.opts.Notice,
		Questions: m.opts.Questions,
		History:   m.historyFactory(),
	})
}

func (m *AppModel) historyFactory() func() screen.Screen {
	if m.opts.Results == nil {
		return nil
	}
	return func() screen.Screen { return history.New(m.opts.Results) }
}

// Phase returns the current phase.
func (m *AppModel) Phase() Phase { return m.phase }

// Runner returns the quiz runner.
func (m *AppModel) Runner() *qz.Runner { return m.runner }

func (m *AppModel) Init() tea.Cmd {
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.shutdown()
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case screen.StartQuizMsg:
		return m, m.startQuiz(msg.Track)

	case quizLoadedMsg:
		return m, m.quizLoaded(msg)

	case screen.QuizDoneMsg:
		return m, m.finishQuiz()

	case screen.RestartMsg:
		return m, m.restart("")
	}

	return m, m.router.Update(msg)
}

// startQuiz requests a question batch for t behind the loading screen.
func (m *AppModel) startQuiz(t *track.Track) tea.Cmd {
	if t == nil || m.phase == PhaseLoading {
		return nil
	}
	m.cancelLoad()

	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.gen++
	m.track = t
	m.phase = PhaseLoading

	n := m.opts.Questions
	if n <= 0 {
		n = quizgen.DefaultBatchSize
	}
	return tea.Batch(
		m.router.Reset(loading.New(t, n)),
		m.load(m.ctx, m.gen, t),
	)
}

func (m *AppModel) load(ctx context.Context, gen uint64, t *track.Track) tea.Cmd {
	g := m.opts.Generator
	return func() tea.Msg {
		if g == nil {
			return quizLoadedMsg{gen: gen, err: quizgen.ErrNoCredential}
		}
		qs, err := g.Generate(ctx, t)
		return quizLoadedMsg{gen: gen, questions: qs, err: err}
	}
}

func (m *AppModel) quizLoaded(msg quizLoadedMsg) tea.Cmd {
	if msg.gen != m.gen || m.phase != PhaseLoading {
		return nil
	}
	if msg.err != nil {
		log.Printf("app: load %s questions: %v", m.track.ID, msg.err)
		return m.restart(loadErrorText(msg.err))
	}

	eff, err := m.runner.Start(m.track, msg.questions)
	if err != nil {
		return m.restart("No usable questions came back. Please try again.")
	}
	m.stopSpeech(eff)

	m.sessionID = uuid.New().String()
	m.phase = PhaseQuiz

	return m.router.Reset(quizscreen.New(m.ctx, m.runner, m.opts.Mixer, m.opts.Pronouncer))
}

// finishQuiz scores the quiz, saves it in the background and shows the
// results screen.
func (m *AppModel) finishQuiz() tea.Cmd {
	if m.phase != PhaseQuiz {
		return nil
	}
	result := m.runner.Result()
	elapsed := m.runner.Elapsed()
	m.phase = PhaseResults
	m.stopSpeech(qz.Effect{Kind: qz.EffectStop})

	cmds := []tea.Cmd{
		m.router.Reset(resultsscreen.New(result, m.track, elapsed, m.historyFactory())),
	}
	if m.opts.Results != nil {
		cmds = append(cmds, m.save(result, m.sessionID, elapsed))
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) save(r results.Result, sessionID string, elapsed time.Duration) tea.Cmd {
	repo := m.opts.Results
	data := r.Record(sessionID, elapsed)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err := repo.AppendResult(ctx, data)
		if err != nil {
			log.Printf("app: save result: %v", err)
		}
		return resultsscreen.SavedMsg{Err: err}
	}
}

// restart abandons any load or quiz and returns to the welcome screen.
func (m *AppModel) restart(errMsg string) tea.Cmd {
	m.cancelLoad()
	m.gen++
	m.stopSpeech(m.runner.Restart())
	if m.opts.Mixer != nil {
		m.opts.Mixer.StopAll()
	}
	m.phase = PhaseWelcome
	m.track = nil
	m.sessionID = ""
	return m.router.Reset(m.welcome(errMsg))
}

func (m *AppModel) cancelLoad() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.ctx = nil
}

func (m *AppModel) stopSpeech(eff qz.Effect) {
	if eff.Kind == qz.EffectStop && m.opts.Mixer != nil {
		m.opts.Mixer.StopSpeech()
	}
}

func (m *AppModel) shutdown() {
	m.cancelLoad()
	if m.opts.Mixer != nil {
		m.opts.Mixer.StopAll()
	}
}

func loadErrorText(err error) string {
	var ue *quizgen.UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	if errors.Is(err, quizgen.ErrNoCredential) {
		return "No API key is configured. Set GEMINI_API_KEY (or another provider key) and try again."
	}
	return fmt.Sprintf("Could not load questions: %v", err)
}

func (m *AppModel) status() string {
	vol := fmt.Sprintf("Vol %d%%  ", int(m.runner.Volume()*100+0.5))
	if m.track == nil {
		return vol
	}
	return m.track.Name + "  ·  " + vol
}

func (m *AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, the active screen and the footer.
func (m *AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := layout.ContentHeight(header, footer, m.height)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
