package audio

import "sync"

// Mixer routes speech and effects to a Sink through one shared gain.
// At most one speech voice plays at a time; effects overlap freely.
type Mixer struct {
	sink Sink

	mu      sync.Mutex
	volume  float64
	speech  Voice
	effects map[Voice]struct{}
	cues    map[Cue]*Buffer
}

// NewMixer creates a Mixer on sink at the given volume.
func NewMixer(sink Sink, volume float64) *Mixer {
	m := &Mixer{
		sink:    sink,
		volume:  ClampVolume(volume),
		effects: make(map[Voice]struct{}),
		cues:    make(map[Cue]*Buffer),
	}
	for _, c := range []Cue{CueCorrect, CueIncorrect} {
		m.cues[c] = Synthesize(c, sink.SampleRate())
	}
	return m
}

// ClampVolume limits v to [0, 1].
func ClampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Volume returns the shared gain.
func (m *Mixer) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetVolume changes the shared gain, including voices already playing.
func (m *Mixer) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = ClampVolume(v)
	if m.speech != nil {
		m.speech.SetVolume(m.volume)
	}
	for e := range m.effects {
		e.SetVolume(m.volume)
	}
}

// PlaySpeech stops any current speech and plays b. The returned voice's
// Done channel reports when it ends.
func (m *Mixer) PlaySpeech(b *Buffer) (Voice, error) {
	b = m.fit(b)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.speech != nil {
		m.speech.Stop()
		m.speech = nil
	}
	v, err := m.sink.Play(b, m.volume)
	if err != nil {
		return nil, err
	}
	m.speech = v
	go m.release(v, func() {
		if m.speech == v {
			m.speech = nil
		}
	})
	return v, nil
}

// StopSpeech halts the current speech voice, if any.
func (m *Mixer) StopSpeech() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.speech != nil {
		m.speech.Stop()
		m.speech = nil
	}
}

// PlayCue plays a sound effect without interrupting speech.
func (m *Mixer) PlayCue(c Cue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, err := m.sink.Play(m.cues[c], m.volume)
	if err != nil {
		return err
	}
	m.effects[v] = struct{}{}
	go m.release(v, func() { delete(m.effects, v) })
	return nil
}

// StopAll halts speech and every effect.
func (m *Mixer) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.speech != nil {
		m.speech.Stop()
		m.speech = nil
	}
	for e := range m.effects {
		e.Stop()
	}
}

// Close stops all voices and closes the sink.
func (m *Mixer) Close() error {
	m.StopAll()
	return m.sink.Close()
}

func (m *Mixer) release(v Voice, forget func()) {
	<-v.Done()
	m.mu.Lock()
	forget()
	m.mu.Unlock()
}

// fit converts b to the sink's mono rate.
func (m *Mixer) fit(b *Buffer) *Buffer {
	if b.Channels == 1 && b.SampleRate == m.sink.SampleRate() {
		return b
	}
	return b.Resample(m.sink.SampleRate())
}
