// Package pronounce fetches synthesized speech for a question and decodes
// it into a playable buffer.
package pronounce

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strconv"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/llm"
)

var (
	// ErrNoCredential is returned when no speech provider is configured.
	ErrNoCredential = errors.New("pronunciation: no API key configured")

	// ErrNoAudio is returned when the provider answers without audio.
	ErrNoAudio = errors.New("pronunciation: no audio returned")
)

// Client turns question text into audio.
type Client struct {
	speaker llm.Speaker
	voice   string
}

// New creates a Client. A nil speaker is allowed; Fetch then fails with
// ErrNoCredential before any network call.
func New(speaker llm.Speaker) *Client {
	return &Client{speaker: speaker}
}

// WithVoice overrides the speaker's configured voice.
func (c *Client) WithVoice(voice string) *Client {
	c.voice = voice
	return c
}

// Available reports whether a speech provider is configured.
func (c *Client) Available() bool {
	return c != nil && c.speaker != nil
}

// Fetch synthesizes text and returns it as mono audio at audio.SampleRate.
func (c *Client) Fetch(ctx context.Context, text string) (*audio.Buffer, error) {
	if !c.Available() {
		return nil, ErrNoCredential
	}

	ctx = llm.WithPurpose(ctx, llm.PurposePronunciation)
	resp, err := c.speaker.Speak(ctx, llm.SpeechRequest{Text: text, Voice: c.voice})
	if err != nil {
		var noAudio *llm.ErrNoAudio
		if errors.As(err, &noAudio) {
			return nil, fmt.Errorf("%w: %v", ErrNoAudio, err)
		}
		return nil, fmt.Errorf("pronunciation request failed: %w", err)
	}
	return Decode(resp)
}

// Decode converts the PCM or WAV audio in resp to mono float32 at
// audio.SampleRate.
func Decode(resp *llm.SpeechResponse) (*audio.Buffer, error) {
	if resp == nil || len(resp.Audio) == 0 {
		return nil, ErrNoAudio
	}
	data := resp.Audio

	var (
		buf *audio.Buffer
		err error
	)
	if audio.IsWAV(data) {
		buf, err = audio.DecodeWAV(data)
	} else {
		rate, channels := pcmFormat(resp.MIMEType)
		buf, err = audio.DecodePCM16LE(data, rate, channels)
	}
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	return buf.Resample(audio.SampleRate), nil
}

// pcmFormat reads rate and channels from a MIME type such as
// "audio/L16;codec=pcm;rate=24000". Missing values default to 24 kHz mono.
func pcmFormat(mimeType string) (rate, channels int) {
	rate, channels = audio.SampleRate, 1
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return rate, channels
	}
	if r, err := strconv.Atoi(params["rate"]); err == nil && r > 0 {
		rate = r
	}
	if c, err := strconv.Atoi(params["channels"]); err == nil && c > 0 {
		channels = c
	}
	return rate, channels
}
