// Package quiz drives a single quiz session: question order, answer
// locking, scoring handoff and the pronunciation playback state.
//
// A Runner is owned by one controller and is not safe for concurrent use.
// Transitions that need I/O return an Effect for the controller to carry
// out; results of that I/O come back through AudioLoaded, AudioFailed and
// PlaybackFinished, tagged with the Ticket the Effect carried.
package quiz

import (
	"errors"
	"time"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/results"
	"github.com/abhisek/lexiz/internal/track"
)

// AdvanceDelay is how long an answer's feedback stays on screen.
const AdvanceDelay = 1200 * time.Millisecond

// DefaultVolume is the initial playback gain.
const DefaultVolume = 0.8

// ErrNoQuestions is returned by Start for an empty question set.
var ErrNoQuestions = errors.New("quiz: no questions")

// PlaybackState is the pronunciation player state.
type PlaybackState int

const (
	PlaybackIdle PlaybackState = iota
	PlaybackLoading
	PlaybackPlaying
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackLoading:
		return "loading"
	case PlaybackPlaying:
		return "playing"
	default:
		return "idle"
	}
}

// Ticket identifies one playback request. Events carrying a ticket other
// than the runner's current one are stale and ignored.
type Ticket struct {
	Session uint64
	Index   int
	Seq     uint64
}

// EffectKind is the I/O a transition asks the controller to perform.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectStop stops whatever speech is playing.
	EffectStop
	// EffectFetch requests audio for Text; reply with AudioLoaded or AudioFailed.
	EffectFetch
	// EffectPlay stops current speech and plays Buffer; reply with
	// PlaybackFinished when it ends.
	EffectPlay
)

// Effect is a side effect requested by a transition.
type Effect struct {
	Kind   EffectKind
	Ticket Ticket
	Text   string
	Buffer *audio.Buffer
}

// Feedback describes a recorded answer.
type Feedback struct {
	Correct bool
	Choice  string
	Answer  string
}

// Runner holds the state of one quiz.
type Runner struct {
	track     *track.Track
	questions []quizgen.Question
	index     int
	answers   []results.Answer
	locked    bool
	finished  bool
	selected  string
	cache     map[int]*audio.Buffer

	playback PlaybackState
	ticket   Ticket
	seq      uint64
	session  uint64

	volume    float64
	startedAt time.Time
}

// NewRunner returns an empty runner at DefaultVolume.
func NewRunner() *Runner {
	return &Runner{volume: DefaultVolume, cache: make(map[int]*audio.Buffer)}
}

// Start begins a new session on t. Any previous session's state is dropped
// and its pending events become stale.
func (r *Runner) Start(t *track.Track, questions []quizgen.Question) (Effect, error) {
	if len(questions) == 0 {
		return Effect{}, ErrNoQuestions
	}
	eff := r.reset()
	r.track = t
	r.questions = questions
	r.startedAt = time.Now()
	return eff, nil
}

// Restart clears answers, the audio cache and the selected track.
func (r *Runner) Restart() Effect {
	return r.reset()
}

func (r *Runner) reset() Effect {
	eff := r.stopEffect()
	r.session++
	r.track = nil
	r.questions = nil
	r.index = 0
	r.answers = nil
	r.locked = false
	r.finished = false
	r.selected = ""
	r.cache = make(map[int]*audio.Buffer)
	r.playback = PlaybackIdle
	r.ticket = Ticket{}
	r.startedAt = time.Time{}
	return eff
}

// Select records choice for the current question. It returns false when
// the question is already answered or no quiz is running.
func (r *Runner) Select(choice string) (Feedback, bool) {
	q, ok := r.Current()
	if !ok || r.locked || r.finished {
		return Feedback{}, false
	}
	r.locked = true
	r.selected = choice
	r.answers = append(r.answers, results.Answer{Index: r.index, Choice: choice})
	return Feedback{Correct: q.IsCorrect(choice), Choice: choice, Answer: q.Answer}, true
}

// SelectIndex selects the option at position i of the current question.
func (r *Runner) SelectIndex(i int) (Feedback, bool) {
	q, ok := r.Current()
	if !ok || r.finished || i < 0 || i >= len(q.Options) {
		return Feedback{}, false
	}
	return r.Select(q.Options[i])
}

// Advance moves past the locked current question. done is true when that
// was the last question; the runner is then finished and stays locked
// until Start or Restart. The returned Effect stops any playback left from
// the previous question.
func (r *Runner) Advance() (done bool, eff Effect) {
	if !r.locked || r.finished {
		return false, Effect{}
	}
	eff = r.stopEffect()
	r.playback = PlaybackIdle
	r.ticket = Ticket{}

	if r.index >= len(r.questions)-1 {
		r.finished = true
		return true, eff
	}
	r.locked = false
	r.selected = ""
	r.index++
	return false, eff
}

// TogglePronunciation starts or stops audio for the current question.
// It does nothing while an answer is locked.
func (r *Runner) TogglePronunciation() Effect {
	q, ok := r.Current()
	if !ok || r.locked || r.finished {
		return Effect{}
	}

	switch r.playback {
	case PlaybackPlaying:
		eff := r.stopEffect()
		r.playback = PlaybackIdle
		r.ticket = Ticket{}
		return eff
	case PlaybackLoading:
		return Effect{}
	}

	r.seq++
	r.ticket = Ticket{Session: r.session, Index: r.index, Seq: r.seq}

	if buf, ok := r.cache[r.index]; ok {
		r.playback = PlaybackPlaying
		return Effect{Kind: EffectPlay, Ticket: r.ticket, Buffer: buf}
	}
	r.playback = PlaybackLoading
	return Effect{Kind: EffectFetch, Ticket: r.ticket, Text: q.Text}
}

// AudioLoaded caches buf for the ticket's question. When the ticket is
// still current the buffer is played.
func (r *Runner) AudioLoaded(t Ticket, buf *audio.Buffer) Effect {
	if t.Session != r.session || buf == nil {
		return Effect{}
	}
	r.cache[t.Index] = buf

	if t != r.ticket || r.playback != PlaybackLoading {
		return Effect{}
	}
	r.playback = PlaybackPlaying
	return Effect{Kind: EffectPlay, Ticket: t, Buffer: buf}
}

// AudioFailed resets playback after a fetch or playback error.
func (r *Runner) AudioFailed(t Ticket) {
	if t == r.ticket && r.playback != PlaybackIdle {
		r.playback = PlaybackIdle
		r.ticket = Ticket{}
	}
}

// PlaybackFinished resets playback when the current voice ends.
func (r *Runner) PlaybackFinished(t Ticket) {
	if t == r.ticket && r.playback == PlaybackPlaying {
		r.playback = PlaybackIdle
		r.ticket = Ticket{}
	}
}

// SetVolume clamps v to [0, 1] and returns the stored value.
func (r *Runner) SetVolume(v float64) float64 {
	r.volume = audio.ClampVolume(v)
	return r.volume
}

func (r *Runner) stopEffect() Effect {
	if r.playback == PlaybackIdle {
		return Effect{}
	}
	return Effect{Kind: EffectStop, Ticket: r.ticket}
}

// Result estimates the learner's level from the answers so far.
func (r *Runner) Result() results.Result {
	if r.track == nil {
		return results.Result{}
	}
	return results.Estimate(r.questions, r.answers, r.track)
}

// Current returns the question being asked.
func (r *Runner) Current() (quizgen.Question, bool) {
	if r.index < 0 || r.index >= len(r.questions) {
		return quizgen.Question{}, false
	}
	return r.questions[r.index], true
}

// Track returns the selected track, or nil when no quiz is running.
func (r *Runner) Track() *track.Track { return r.track }

// Index returns the zero-based position of the current question.
func (r *Runner) Index() int { return r.index }

// Total returns the number of questions in the quiz.
func (r *Runner) Total() int { return len(r.questions) }

// Session identifies the running quiz. It changes on Start and Restart.
func (r *Runner) Session() uint64 { return r.session }

// Answers returns a copy of the recorded answers in answer order.
func (r *Runner) Answers() []results.Answer {
	out := make([]results.Answer, len(r.answers))
	copy(out, r.answers)
	return out
}

// Locked reports whether the current question has been answered.
func (r *Runner) Locked() bool { return r.locked }

// Finished reports whether the last question has been answered and
// advanced past.
func (r *Runner) Finished() bool { return r.finished }

// Selected returns the locked choice for the current question.
func (r *Runner) Selected() string { return r.selected }

// Playback returns the pronunciation player state.
func (r *Runner) Playback() PlaybackState { return r.playback }

// Ticket returns the ticket of the pending or playing request. It is the
// zero Ticket while playback is idle.
func (r *Runner) Ticket() Ticket { return r.ticket }

// Cached reports whether audio for question i is cached.
func (r *Runner) Cached(i int) bool {
	_, ok := r.cache[i]
	return ok
}

// CacheSize returns the number of cached audio buffers.
func (r *Runner) CacheSize() int { return len(r.cache) }

// Volume returns the playback gain.
func (r *Runner) Volume() float64 { return r.volume }

// Elapsed returns the time since Start.
func (r *Runner) Elapsed() time.Duration {
	if r.startedAt.IsZero() {
		return 0
	}
	return time.Since(r.startedAt)
}
