package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrNotWAV is returned by DecodeWAV for data that is not a RIFF/WAVE file.
var ErrNotWAV = errors.New("wav: not a RIFF/WAVE stream")

const (
	wavBitDepth  = 16
	wavFormatPCM = 1
)

// IsWAV reports whether data starts with a RIFF/WAVE header.
func IsWAV(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE"
}

// EncodeWAV writes b as a 16-bit PCM WAV file.
func EncodeWAV(w io.Writer, b *Buffer) error {
	ints := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: b.Channels, SampleRate: b.SampleRate},
		Data:           make([]int, len(b.Samples)),
		SourceBitDepth: wavBitDepth,
	}
	for i, s := range b.Samples {
		ints.Data[i] = int(math.Round(float64(ClampSample(s)) * 32767))
	}

	// The encoder patches chunk sizes on Close, so it needs a seekable sink.
	var out memFile
	enc := wav.NewEncoder(&out, b.SampleRate, wavBitDepth, b.Channels, wavFormatPCM)
	if err := enc.Write(ints); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}
	if _, err := w.Write(out.buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}

// DecodeWAV reads a 16-bit PCM WAV file.
func DecodeWAV(data []byte) (*Buffer, error) {
	if !IsWAV(data) {
		return nil, ErrNotWAV
	}
	dec := wav.NewDecoder(bytes.NewReader(data))
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("wav: read header: %w", err)
	}
	if dec.NumChans == 0 {
		return nil, fmt.Errorf("wav: no fmt chunk")
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("wav: unsupported format %d", dec.WavAudioFormat)
	}
	if dec.BitDepth != wavBitDepth {
		return nil, fmt.Errorf("wav: unsupported bit depth %d", dec.BitDepth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: read samples: %w", err)
	}
	f := pcm.AsFloat32Buffer()
	return &Buffer{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    f.Data,
	}, nil
}

// memFile is an in-memory io.WriteSeeker.
type memFile struct {
	buf []byte
	pos int
}

func (m *memFile) Write(p []byte) (int, error) {
	if end := m.pos + len(p); end > len(m.buf) {
		m.buf = append(m.buf, make([]byte, end-len(m.buf))...)
	}
	n := copy(m.buf[m.pos:], p)
	m.pos += n
	return n, nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(m.pos)
	case io.SeekEnd:
		base = int64(len(m.buf))
	default:
		return 0, fmt.Errorf("memfile: bad whence %d", whence)
	}
	next := base + offset
	if next < 0 {
		return 0, fmt.Errorf("memfile: negative position %d", next)
	}
	m.pos = int(next)
	return next, nil
}

// ClampSample limits s to [-1, 1].
func ClampSample(s float32) float32 {
	switch {
	case s < -1:
		return -1
	case s > 1:
		return 1
	default:
		return s
	}
}
