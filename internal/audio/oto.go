//go:build !linux || cgo

package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// pollInterval is how often a playing voice checks whether it drained.
const pollInterval = 20 * time.Millisecond

// OtoSink plays through the system audio device.
type OtoSink struct {
	ctx  *oto.Context
	rate int
}

// NewOtoSink opens the default device for mono float32 output at rate.
// Only one device context may exist per process.
func NewOtoSink(rate int) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("audio device: %w", err)
	}
	return &OtoSink{ctx: ctx, rate: rate}, nil
}

func (s *OtoSink) Play(b *Buffer, volume float64) (Voice, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, fmt.Errorf("audio device: %w", err)
	}
	p := s.ctx.NewPlayer(bytes.NewReader(b.Float32LE()))
	p.SetVolume(volume)
	p.Play()

	v := &otoVoice{player: p, done: newDoneSignal()}
	go v.watch()
	return v, nil
}

func (s *OtoSink) SampleRate() int { return s.rate }

// Close suspends the device. oto contexts cannot be destroyed.
func (s *OtoSink) Close() error {
	return s.ctx.Suspend()
}

type otoVoice struct {
	mu     sync.Mutex
	player *oto.Player
	done   *doneSignal
}

// watch closes done once the player drains or is stopped.
func (v *otoVoice) watch() {
	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for {
		select {
		case <-v.done.ch:
			return
		case <-t.C:
			v.mu.Lock()
			playing := v.player.IsPlaying()
			v.mu.Unlock()
			if !playing {
				v.finish()
				return
			}
		}
	}
}

func (v *otoVoice) SetVolume(vol float64) {
	v.mu.Lock()
	v.player.SetVolume(vol)
	v.mu.Unlock()
}

func (v *otoVoice) Stop() {
	v.mu.Lock()
	v.player.Pause()
	v.mu.Unlock()
	v.finish()
}

func (v *otoVoice) finish() {
	v.mu.Lock()
	defer v.mu.Unlock()
	select {
	case <-v.done.ch:
		return
	default:
	}
	v.player.Close()
	v.done.close()
}

func (v *otoVoice) Done() <-chan struct{} { return v.done.ch }
