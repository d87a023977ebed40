// Package audio holds decoded sample buffers, procedural sound cues and the
// playback mixer.
package audio

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SampleRate is the playback rate of every buffer handed to a Sink.
const SampleRate = 24000

// ErrOddLength is returned when 16-bit PCM data has a dangling byte.
var ErrOddLength = errors.New("pcm16: odd number of bytes")

// Buffer is interleaved float32 audio normalized to [-1, 1].
type Buffer struct {
	SampleRate int
	Channels   int
	Samples    []float32
}

// Frames returns the number of sample frames.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playback length.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// DecodePCM16LE converts signed 16-bit little-endian PCM to a Buffer.
func DecodePCM16LE(data []byte, rate, channels int) (*Buffer, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	if rate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("pcm16: invalid format %d Hz x %d", rate, channels)
	}
	samples := make([]float32, len(data)/2)
	for i := range samples {
		v := int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8)
		samples[i] = float32(v) / 32768
	}
	return &Buffer{SampleRate: rate, Channels: channels, Samples: samples}, nil
}

// Mono averages all channels into one. A mono buffer is returned as is.
func (b *Buffer) Mono() *Buffer {
	if b.Channels <= 1 {
		return b
	}
	frames := b.Frames()
	out := make([]float32, frames)
	for f := 0; f < frames; f++ {
		var sum float32
		for c := 0; c < b.Channels; c++ {
			sum += b.Samples[f*b.Channels+c]
		}
		out[f] = sum / float32(b.Channels)
	}
	return &Buffer{SampleRate: b.SampleRate, Channels: 1, Samples: out}
}

// Resample converts a mono buffer to rate with linear interpolation.
// Multi-channel buffers are mixed down first.
func (b *Buffer) Resample(rate int) *Buffer {
	m := b.Mono()
	if m.SampleRate == rate || len(m.Samples) == 0 {
		return &Buffer{SampleRate: rate, Channels: 1, Samples: m.Samples}
	}
	n := int(math.Round(float64(len(m.Samples)) * float64(rate) / float64(m.SampleRate)))
	out := make([]float32, n)
	step := float64(m.SampleRate) / float64(rate)
	last := len(m.Samples) - 1
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= last {
			out[i] = m.Samples[last]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = m.Samples[j]*(1-frac) + m.Samples[j+1]*frac
	}
	return &Buffer{SampleRate: rate, Channels: 1, Samples: out}
}

// Float32LE encodes the samples as little-endian IEEE floats.
func (b *Buffer) Float32LE() []byte {
	out := make([]byte, 4*len(b.Samples))
	for i, s := range b.Samples {
		u := math.Float32bits(s)
		out[4*i] = byte(u)
		out[4*i+1] = byte(u >> 8)
		out[4*i+2] = byte(u >> 16)
		out[4*i+3] = byte(u >> 24)
	}
	return out
}
