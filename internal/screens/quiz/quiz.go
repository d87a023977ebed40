// Package quiz is the question screen. It renders the runner's current
// question and carries out the audio effects the runner asks for.
package quiz

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/pronounce"
	qz "github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

// VolumeStep is the change applied by one volume key press.
const VolumeStep = 0.1

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Choose     key.Binding
	Pronounce  key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
	Down:       key.NewBinding(key.WithKeys("down", "j")),
	Choose:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter/1-4", "Answer")),
	Pronounce:  key.NewBinding(key.WithKeys("p", "space"), key.WithHelp("P", "Pronounce")),
	VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "Volume")),
	VolumeDown: key.NewBinding(key.WithKeys("-", "_")),
	Quit:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
	Confirm:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("Y", "Leave quiz")),
	Cancel:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("N", "Keep going")),
}

func hint(b key.Binding) layout.KeyHint {
	return layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc}
}

// QuizScreen asks the runner's questions one at a time.
type QuizScreen struct {
	ctx        context.Context
	runner     *qz.Runner
	mixer      *audio.Mixer
	pronouncer *pronounce.Client

	choice      components.MultiChoice
	feedback    *qz.Feedback
	audioErr    string
	confirmQuit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a QuizScreen over a started runner. Fetches run under ctx,
// which the caller cancels when the quiz is abandoned.
func New(ctx context.Context, runner *qz.Runner, mixer *audio.Mixer, pronouncer *pronounce.Client) *QuizScreen {
	s := &QuizScreen{
		ctx:        ctx,
		runner:     runner,
		mixer:      mixer,
		pronouncer: pronouncer,
	}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) loadQuestion() {
	q, _ := s.runner.Current()
	s.choice = components.NewMultiChoice(q.Options)
	s.feedback = nil
	s.audioErr = ""
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string {
	if t := s.runner.Track(); t != nil {
		return t.Name
	}
	return "Quiz"
}

func (s *QuizScreen) HandlesEscape() bool { return true }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{hint(keys.Confirm), hint(keys.Cancel)}
	}
	if s.runner.Locked() {
		return []layout.KeyHint{hint(keys.VolumeUp), hint(keys.Quit)}
	}
	return []layout.KeyHint{
		hint(keys.Up),
		hint(keys.Choose),
		hint(keys.Pronounce),
		hint(keys.VolumeUp),
		hint(keys.Quit),
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s.handleAdvance(msg)

	case audioLoadedMsg:
		return s.handleAudioLoaded(msg)

	case playbackDoneMsg:
		s.runner.PlaybackFinished(msg.ticket)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.confirmQuit {
		switch {
		case key.Matches(msg, keys.Confirm):
			return s, func() tea.Msg { return screen.RestartMsg{} }
		case key.Matches(msg, keys.Cancel):
			s.confirmQuit = false
		}
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		s.confirmQuit = true
		return s, nil
	case key.Matches(msg, keys.VolumeUp):
		s.changeVolume(VolumeStep)
		return s, nil
	case key.Matches(msg, keys.VolumeDown):
		s.changeVolume(-VolumeStep)
		return s, nil
	}

	if s.runner.Locked() {
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		s.choice.Up()
	case key.Matches(msg, keys.Down):
		s.choice.Down()
	case key.Matches(msg, keys.Choose):
		return s, s.choose(s.choice.Cursor)
	case key.Matches(msg, keys.Pronounce):
		s.audioErr = ""
		return s, s.execute(s.runner.TogglePronunciation())
	default:
		if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '4' {
			i := int(k[0] - '1')
			s.choice.Cursor = i
			return s, s.choose(i)
		}
	}
	return s, nil
}

// choose locks option i, plays the matching cue and schedules the advance.
func (s *QuizScreen) choose(i int) tea.Cmd {
	fb, ok := s.runner.SelectIndex(i)
	if !ok {
		return nil
	}
	s.feedback = &fb
	s.choice.Lock(fb.Choice, fb.Answer)

	cue := audio.CueIncorrect
	if fb.Correct {
		cue = audio.CueCorrect
	}
	if err := s.mixer.PlayCue(cue); err != nil {
		log.Printf("quiz: play cue: %v", err)
	}

	session, index := s.runner.Session(), s.runner.Index()
	return tea.Tick(qz.AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{session: session, index: index}
	})
}

func (s *QuizScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.session != s.runner.Session() || msg.index != s.runner.Index() {
		return s, nil
	}
	done, eff := s.runner.Advance()
	cmd := s.execute(eff)
	if done {
		return s, tea.Batch(cmd, func() tea.Msg { return screen.QuizDoneMsg{} })
	}
	s.loadQuestion()
	return s, cmd
}

func (s *QuizScreen) handleAudioLoaded(msg audioLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		current := msg.ticket == s.runner.Ticket()
		s.runner.AudioFailed(msg.ticket)
		if current {
			s.audioErr = audioErrorText(msg.err)
			log.Printf("quiz: pronunciation: %v", msg.err)
		}
		return s, nil
	}
	return s, s.execute(s.runner.AudioLoaded(msg.ticket, msg.buf))
}

// execute performs a runner effect and returns the command that reports
// its outcome.
func (s *QuizScreen) execute(eff qz.Effect) tea.Cmd {
	switch eff.Kind {
	case qz.EffectStop:
		s.mixer.StopSpeech()

	case qz.EffectFetch:
		ctx, ticket, text, p := s.ctx, eff.Ticket, eff.Text, s.pronouncer
		return func() tea.Msg {
			buf, err := p.Fetch(ctx, text)
			return audioLoadedMsg{ticket: ticket, buf: buf, err: err}
		}

	case qz.EffectPlay:
		v, err := s.mixer.PlaySpeech(eff.Buffer)
		if err != nil {
			s.runner.AudioFailed(eff.Ticket)
			s.audioErr = "Couldn't play audio."
			log.Printf("quiz: play speech: %v", err)
			return nil
		}
		ticket := eff.Ticket
		return func() tea.Msg {
			<-v.Done()
			return playbackDoneMsg{ticket: ticket}
		}
	}
	return nil
}

func (s *QuizScreen) changeVolume(delta float64) {
	v := math.Round((s.runner.Volume()+delta)*10) / 10
	s.mixer.SetVolume(s.runner.SetVolume(v))
}

func audioErrorText(err error) string {
	switch {
	case errors.Is(err, pronounce.ErrNoCredential):
		return "Pronunciation needs an API key."
	case errors.Is(err, pronounce.ErrNoAudio):
		return "No audio came back for this word."
	case errors.Is(err, context.Canceled):
		return ""
	default:
		return "Couldn't load audio."
	}
}
