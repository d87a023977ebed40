package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/pronounce"
	qz "github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/track"
)

type fixture struct {
	screen  *QuizScreen
	runner  *qz.Runner
	sink    *audio.SilentSink
	mixer   *audio.Mixer
	speaker *llm.MockSpeaker
}

func newFixture(t *testing.T, speaker *llm.MockSpeaker) *fixture {
	t.Helper()

	tr, err := track.Get(track.HSK)
	require.NoError(t, err)

	questions := []quizgen.Question{
		{Text: "学习 (xuéxí)", Options: []string{"to eat", "to study", "to sleep", "to run"}, Answer: "to study", Level: "1"},
		{Text: "经济 (jīngjì)", Options: []string{"economy", "history", "weather", "music"}, Answer: "economy", Level: "4", Context: "中国的经济发展很快。"},
	}

	runner := qz.NewRunner()
	_, err = runner.Start(tr, questions)
	require.NoError(t, err)

	sink := audio.NewSilentSink(audio.SampleRate)
	sink.Speed = 0
	mixer := audio.NewMixer(sink, runner.Volume())

	var p *pronounce.Client
	if speaker != nil {
		p = pronounce.New(speaker)
	} else {
		p = pronounce.New(nil)
	}

	return &fixture{
		screen:  New(context.Background(), runner, mixer, p),
		runner:  runner,
		sink:    sink,
		mixer:   mixer,
		speaker: speaker,
	}
}

func pcmSpeaker() *llm.MockSpeaker {
	s := llm.NewMockSpeaker()
	s.Fallback = &llm.SpeechResponse{
		Audio:    make([]byte, 4800),
		MIMEType: "audio/L16;codec=pcm;rate=24000",
	}
	return s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
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

func TestNumberKeyAnswers(t *testing.T) {
	f := newFixture(t, nil)

	_, cmd := f.screen.Update(keyPress('2'))
	require.NotNil(t, cmd, "expected advance tick")

	assert.True(t, f.runner.Locked())
	require.NotNil(t, f.screen.feedback)
	assert.True(t, f.screen.feedback.Correct)
	assert.Len(t, f.sink.Played(), 1, "correct cue should play")
	assert.Contains(t, f.screen.View(100, 40), "Correct!")
}

func TestLockedQuestionIgnoresSecondAnswer(t *testing.T) {
	f := newFixture(t, nil)

	f.screen.Update(keyPress('1'))
	_, cmd := f.screen.Update(keyPress('2'))

	assert.Nil(t, cmd)
	assert.Equal(t, "to eat", f.runner.Selected())
	assert.Len(t, f.runner.Answers(), 1)
	assert.Contains(t, f.screen.View(100, 40), `The answer is "to study".`)
}

func TestEnterAnswersAtCursor(t *testing.T) {
	f := newFixture(t, nil)

	f.screen.Update(specialKey(tea.KeyDown))
	f.screen.Update(specialKey(tea.KeyDown))
	f.screen.Update(specialKey(tea.KeyUp))
	f.screen.Update(specialKey(tea.KeyEnter))

	assert.Equal(t, "to study", f.runner.Selected())
}

func TestAdvanceMovesToNextQuestionThenFinishes(t *testing.T) {
	f := newFixture(t, nil)
	session := f.runner.Session()

	f.screen.Update(keyPress('2'))
	_, cmd := f.screen.Update(advanceMsg{session: session, index: 0})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, f.runner.Index())
	assert.False(t, f.runner.Locked())
	assert.Nil(t, f.screen.feedback)
	assert.Contains(t, f.screen.View(100, 40), "经济 (jīngjì)")

	f.screen.Update(keyPress('1'))
	_, cmd = f.screen.Update(advanceMsg{session: session, index: 1})

	var done bool
	for _, msg := range collect(cmd) {
		if _, ok := msg.(screen.QuizDoneMsg); ok {
			done = true
		}
	}
	assert.True(t, done, "expected QuizDoneMsg after last question")
	assert.Equal(t, 100, f.runner.Result().Score)
}

func TestKeysIgnoredOnceQuizFinished(t *testing.T) {
	f := newFixture(t, pcmSpeaker())
	session := f.runner.Session()

	f.screen.Update(keyPress('2'))
	f.screen.Update(advanceMsg{session: session, index: 0})
	f.screen.Update(keyPress('1'))
	f.screen.Update(advanceMsg{session: session, index: 1})
	require.True(t, f.runner.Finished())

	// Keys that land before QuizDoneMsg is handled change nothing.
	_, cmd := f.screen.Update(keyPress('3'))
	assert.Nil(t, cmd)
	_, cmd = f.screen.Update(keyPress('p'))
	assert.Nil(t, cmd)
	_, cmd = f.screen.Update(advanceMsg{session: session, index: 1})
	assert.Nil(t, cmd)

	assert.Len(t, f.runner.Answers(), 2)
	assert.Equal(t, 0, f.speaker.CallCount())
}

func TestStaleAdvanceIgnored(t *testing.T) {
	f := newFixture(t, nil)

	f.screen.Update(keyPress('2'))
	f.screen.Update(advanceMsg{session: f.runner.Session() + 1, index: 0})
	assert.Equal(t, 0, f.runner.Index())

	f.screen.Update(advanceMsg{session: f.runner.Session(), index: 5})
	assert.Equal(t, 0, f.runner.Index())
	assert.True(t, f.runner.Locked())
}

func TestPronunciationFetchPlayAndCache(t *testing.T) {
	f := newFixture(t, pcmSpeaker())

	_, cmd := f.screen.Update(keyPress('p'))
	require.NotNil(t, cmd)
	assert.Equal(t, qz.PlaybackLoading, f.runner.Playback())
	assert.Contains(t, f.screen.View(100, 40), "Loading audio")

	loaded := cmd()
	_, cmd = f.screen.Update(loaded)
	require.NotNil(t, cmd, "expected playback watcher")
	assert.Equal(t, qz.PlaybackPlaying, f.runner.Playback())
	assert.True(t, f.runner.Cached(0))
	require.Len(t, f.sink.Played(), 1)

	f.screen.Update(cmd())
	assert.Equal(t, qz.PlaybackIdle, f.runner.Playback())

	// The second request plays from the cache.
	_, cmd = f.screen.Update(specialKey(tea.KeySpace))
	require.NotNil(t, cmd)
	assert.Equal(t, qz.PlaybackPlaying, f.runner.Playback())
	assert.Equal(t, 1, f.speaker.CallCount())
	assert.Len(t, f.sink.Played(), 2)
	assert.Equal(t, "学习 (xuéxí)", f.speaker.Calls[0].Text)
}

func TestPronunciationWithoutCredential(t *testing.T) {
	f := newFixture(t, nil)
	assert.Contains(t, f.screen.View(100, 40), "Pronunciation unavailable")

	_, cmd := f.screen.Update(keyPress('p'))
	require.NotNil(t, cmd)
	f.screen.Update(cmd())

	assert.Equal(t, qz.PlaybackIdle, f.runner.Playback())
	assert.Equal(t, "Pronunciation needs an API key.", f.screen.audioErr)
	assert.Contains(t, f.screen.View(100, 40), "Pronunciation needs an API key.")
}

func TestStaleAudioDoesNotPlay(t *testing.T) {
	f := newFixture(t, pcmSpeaker())

	_, fetch := f.screen.Update(keyPress('p'))
	require.NotNil(t, fetch)
	loaded := fetch()

	// Answer and move on before the audio arrives.
	f.screen.Update(keyPress('2'))
	f.screen.Update(advanceMsg{session: f.runner.Session(), index: 0})

	_, cmd := f.screen.Update(loaded)
	assert.Nil(t, cmd)
	assert.Equal(t, qz.PlaybackIdle, f.runner.Playback())
	assert.True(t, f.runner.Cached(0), "late audio is still cached")
	assert.Len(t, f.sink.Played(), 1, "only the answer cue plays")
}

func TestVolumeKeys(t *testing.T) {
	f := newFixture(t, nil)

	f.screen.Update(keyPress('+'))
	f.screen.Update(keyPress('='))
	f.screen.Update(keyPress('+'))
	assert.InDelta(t, 1.0, f.runner.Volume(), 1e-9)

	f.screen.Update(keyPress('-'))
	assert.InDelta(t, 0.9, f.runner.Volume(), 1e-9)
	assert.InDelta(t, 0.9, f.mixer.Volume(), 1e-9)
	assert.Contains(t, f.screen.View(100, 40), "Volume 90%")
}

func TestEscConfirmsBeforeLeaving(t *testing.T) {
	f := newFixture(t, nil)

	_, cmd := f.screen.Update(specialKey(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.True(t, f.screen.confirmQuit)
	assert.True(t, strings.Contains(f.screen.View(100, 40), "Leave this quiz?"))

	f.screen.Update(keyPress('n'))
	assert.False(t, f.screen.confirmQuit)

	f.screen.Update(specialKey(tea.KeyEsc))
	_, cmd = f.screen.Update(keyPress('y'))
	require.NotNil(t, cmd)
	_, ok := cmd().(screen.RestartMsg)
	assert.True(t, ok)
}

func TestConfirmBlocksAnswers(t *testing.T) {
	f := newFixture(t, nil)

	f.screen.Update(specialKey(tea.KeyEsc))
	f.screen.Update(keyPress('1'))
	assert.False(t, f.runner.Locked())
}
