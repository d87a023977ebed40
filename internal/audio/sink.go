package audio

import (
	"sync"
	"time"
)

// Voice is one playing buffer.
type Voice interface {
	// SetVolume changes the gain of the playing buffer, 0 to 1.
	SetVolume(v float64)

	// Stop halts playback. Done is closed afterwards.
	Stop()

	// Done is closed when playback ends or is stopped.
	Done() <-chan struct{}
}

// Sink is an output device.
type Sink interface {
	// Play starts b at the given volume. b must be mono at SampleRate().
	Play(b *Buffer, volume float64) (Voice, error)

	SampleRate() int
	Close() error
}

// doneSignal closes a channel once.
type doneSignal struct {
	once sync.Once
	ch   chan struct{}
}

func newDoneSignal() *doneSignal {
	return &doneSignal{ch: make(chan struct{})}
}

func (d *doneSignal) close() {
	d.once.Do(func() { close(d.ch) })
}

// SilentSink discards audio and finishes each voice after the buffer's
// duration, scaled by Speed. It stands in for a device in tests, with
// --mute, and when no device can be opened.
type SilentSink struct {
	rate int

	// Speed divides playback time. Zero finishes voices immediately.
	Speed float64

	mu     sync.Mutex
	played []SilentPlay
}

// SilentPlay records one Play call.
type SilentPlay struct {
	Buffer *Buffer
	Voice  *SilentVoice
}

// NewSilentSink returns a SilentSink running in real time.
func NewSilentSink(rate int) *SilentSink {
	return &SilentSink{rate: rate, Speed: 1}
}

func (s *SilentSink) Play(b *Buffer, volume float64) (Voice, error) {
	v := &SilentVoice{done: newDoneSignal()}
	v.SetVolume(volume)

	if s.Speed <= 0 {
		v.done.close()
	} else {
		d := time.Duration(float64(b.Duration()) / s.Speed)
		v.timer = time.AfterFunc(d, v.done.close)
	}

	s.mu.Lock()
	s.played = append(s.played, SilentPlay{Buffer: b, Voice: v})
	s.mu.Unlock()
	return v, nil
}

// Played returns every Play call so far.
func (s *SilentSink) Played() []SilentPlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SilentPlay, len(s.played))
	copy(out, s.played)
	return out
}

func (s *SilentSink) SampleRate() int { return s.rate }

func (s *SilentSink) Close() error { return nil }

// SilentVoice is the Voice of a SilentSink.
type SilentVoice struct {
	mu      sync.Mutex
	volume  float64
	stopped bool
	timer   *time.Timer
	done    *doneSignal
}

func (v *SilentVoice) SetVolume(vol float64) {
	v.mu.Lock()
	v.volume = vol
	v.mu.Unlock()
}

// Volume returns the last volume set.
func (v *SilentVoice) Volume() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.volume
}

func (v *SilentVoice) Stop() {
	v.mu.Lock()
	v.stopped = true
	if v.timer != nil {
		v.timer.Stop()
	}
	v.mu.Unlock()
	v.done.close()
}

// Stopped reports whether Stop was called.
func (v *SilentVoice) Stopped() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stopped
}

func (v *SilentVoice) Done() <-chan struct{} { return v.done.ch }
