package quiz

import (
	"testing"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []quizgen.Question {
	return []quizgen.Question{
		{Text: "学习 (xuéxí)", Options: []string{"to study", "to eat", "to sleep", "to run"}, Answer: "to study", Level: "1"},
		{Text: "经济 (jīngjì)", Options: []string{"weather", "economy", "history", "music"}, Answer: "economy", Level: "4"},
		{Text: "环境 (huánjìng)", Options: []string{"environment", "exam", "office", "bridge"}, Answer: "environment", Level: "3"},
	}
}

func startedRunner(t *testing.T) *Runner {
	t.Helper()
	tr, err := track.Get(track.HSK)
	require.NoError(t, err)
	r := NewRunner()
	_, err = r.Start(tr, sampleQuestions())
	require.NoError(t, err)
	return r
}

func tone() *audio.Buffer {
	return &audio.Buffer{SampleRate: audio.SampleRate, Channels: 1, Samples: make([]float32, 100)}
}

func TestStart_EmptyQuestions(t *testing.T) {
	r := NewRunner()
	_, err := r.Start(nil, nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestSelect_RecordsAndLocks(t *testing.T) {
	r := startedRunner(t)

	fb, ok := r.Select("to study")
	require.True(t, ok)
	assert.True(t, fb.Correct)
	assert.True(t, r.Locked())
	assert.Equal(t, "to study", r.Selected())
	require.Len(t, r.Answers(), 1)
	assert.Equal(t, 0, r.Answers()[0].Index)
}

func TestSelect_SecondSelectionIgnored(t *testing.T) {
	r := startedRunner(t)

	_, ok := r.Select("to eat")
	require.True(t, ok)
	_, ok = r.Select("to study")
	assert.False(t, ok)
	_, ok = r.SelectIndex(0)
	assert.False(t, ok)

	require.Len(t, r.Answers(), 1)
	assert.Equal(t, "to eat", r.Answers()[0].Choice)
}

func TestSelectIndex(t *testing.T) {
	r := startedRunner(t)

	_, ok := r.SelectIndex(9)
	assert.False(t, ok)

	fb, ok := r.SelectIndex(1)
	require.True(t, ok)
	assert.False(t, fb.Correct)
	assert.Equal(t, "to eat", fb.Choice)
	assert.Equal(t, "to study", fb.Answer)
}

func TestAdvance_ThroughToCompletion(t *testing.T) {
	r := startedRunner(t)

	done, _ := r.Advance()
	assert.False(t, done, "advance without an answer is a no-op")
	assert.Equal(t, 0, r.Index())

	choices := []string{"to study", "weather", "environment"}
	for i, c := range choices {
		_, ok := r.Select(c)
		require.True(t, ok)
		done, _ := r.Advance()
		last := i == len(choices)-1
		assert.Equal(t, last, done)
		assert.Equal(t, last, r.Locked())
	}
	assert.True(t, r.Finished())

	res := r.Result()
	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 67, res.Score)
}

func TestFinishedRunnerRejectsInput(t *testing.T) {
	r := startedRunner(t)
	for _, c := range []string{"to study", "weather", "environment"} {
		_, ok := r.Select(c)
		require.True(t, ok)
		r.Advance()
	}
	require.True(t, r.Finished())

	_, ok := r.Select("exam")
	assert.False(t, ok)
	_, ok = r.SelectIndex(0)
	assert.False(t, ok)
	assert.Len(t, r.Answers(), 3)

	done, eff := r.Advance()
	assert.False(t, done, "a finished quiz does not finish twice")
	assert.Equal(t, EffectNone, eff.Kind)
	assert.Equal(t, EffectNone, r.TogglePronunciation().Kind)
	assert.Equal(t, PlaybackIdle, r.Playback())

	r.Restart()
	assert.False(t, r.Finished())
	assert.False(t, r.Locked())
}

func TestTogglePronunciation_FetchThenPlay(t *testing.T) {
	r := startedRunner(t)

	eff := r.TogglePronunciation()
	require.Equal(t, EffectFetch, eff.Kind)
	assert.Equal(t, "学习 (xuéxí)", eff.Text)
	assert.Equal(t, PlaybackLoading, r.Playback())

	assert.Equal(t, EffectNone, r.TogglePronunciation().Kind, "toggle while loading waits")

	buf := tone()
	play := r.AudioLoaded(eff.Ticket, buf)
	require.Equal(t, EffectPlay, play.Kind)
	assert.Same(t, buf, play.Buffer)
	assert.Equal(t, PlaybackPlaying, r.Playback())
	assert.True(t, r.Cached(0))

	r.PlaybackFinished(play.Ticket)
	assert.Equal(t, PlaybackIdle, r.Playback())
}

func TestTogglePronunciation_CachedPlaysImmediately(t *testing.T) {
	r := startedRunner(t)

	fetch := r.TogglePronunciation()
	play := r.AudioLoaded(fetch.Ticket, tone())
	r.PlaybackFinished(play.Ticket)

	again := r.TogglePronunciation()
	require.Equal(t, EffectPlay, again.Kind)
	assert.Equal(t, PlaybackPlaying, r.Playback())
	assert.NotEqual(t, play.Ticket, again.Ticket)
}

func TestTogglePronunciation_StopWhilePlaying(t *testing.T) {
	r := startedRunner(t)

	fetch := r.TogglePronunciation()
	play := r.AudioLoaded(fetch.Ticket, tone())

	stop := r.TogglePronunciation()
	assert.Equal(t, EffectStop, stop.Kind)
	assert.Equal(t, PlaybackIdle, r.Playback())

	// The stopped voice's completion arrives late and must not disturb a
	// newer playback.
	replay := r.TogglePronunciation()
	require.Equal(t, EffectPlay, replay.Kind)
	r.PlaybackFinished(play.Ticket)
	assert.Equal(t, PlaybackPlaying, r.Playback())
}

func TestTogglePronunciation_DisabledWhileLocked(t *testing.T) {
	r := startedRunner(t)
	r.Select("to study")

	assert.Equal(t, EffectNone, r.TogglePronunciation().Kind)
	assert.Equal(t, PlaybackIdle, r.Playback())
}

func TestAudioFailed_ResetsToIdle(t *testing.T) {
	r := startedRunner(t)

	fetch := r.TogglePronunciation()
	r.AudioFailed(fetch.Ticket)
	assert.Equal(t, PlaybackIdle, r.Playback())
	assert.False(t, r.Cached(0))

	// Answering is unaffected.
	_, ok := r.Select("to study")
	assert.True(t, ok)
}

func TestAudioLoaded_StaleQuestionIsCachedNotPlayed(t *testing.T) {
	r := startedRunner(t)

	fetch := r.TogglePronunciation()
	r.Select("to study")
	done, stop := r.Advance()
	require.False(t, done)
	assert.Equal(t, EffectStop, stop.Kind, "advancing stops pending playback")

	eff := r.AudioLoaded(fetch.Ticket, tone())
	assert.Equal(t, EffectNone, eff.Kind)
	assert.True(t, r.Cached(0))
	assert.Equal(t, PlaybackIdle, r.Playback())
}

func TestAudioLoaded_EarlierSessionIgnored(t *testing.T) {
	r := startedRunner(t)
	fetch := r.TogglePronunciation()

	tr, _ := track.Get(track.DELE)
	_, err := r.Start(tr, sampleQuestions())
	require.NoError(t, err)

	eff := r.AudioLoaded(fetch.Ticket, tone())
	assert.Equal(t, EffectNone, eff.Kind)
	assert.Equal(t, 0, r.CacheSize())
}

func TestRestart_ClearsEverything(t *testing.T) {
	r := startedRunner(t)
	fetch := r.TogglePronunciation()
	r.AudioLoaded(fetch.Ticket, tone())
	session := r.Session()

	stop := r.Restart()
	assert.Equal(t, EffectStop, stop.Kind)
	assert.Empty(t, r.Answers())
	assert.Equal(t, 0, r.CacheSize())
	assert.Nil(t, r.Track())
	assert.Equal(t, 0, r.Total())
	assert.Equal(t, PlaybackIdle, r.Playback())
	assert.NotEqual(t, session, r.Session())

	_, ok := r.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Result().Total)
}

func TestRestart_AfterAnswers(t *testing.T) {
	r := startedRunner(t)
	r.Select("to study")
	r.Advance()
	r.Select("economy")

	r.Restart()
	assert.Empty(t, r.Answers())
	assert.False(t, r.Locked())
}

func TestSetVolume_Clamps(t *testing.T) {
	r := NewRunner()
	assert.Equal(t, DefaultVolume, r.Volume())
	assert.Equal(t, 1.0, r.SetVolume(1.4))
	assert.Equal(t, 0.0, r.SetVolume(-1))
	assert.Equal(t, 0.3, r.SetVolume(0.3))
	assert.Equal(t, 0.3, r.Volume())
}
