package pronounce

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pcm returns n frames of 16-bit mono PCM at half scale.
func pcm(n int) []byte {
	out := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		out[2*i] = 0x00
		out[2*i+1] = 0x40
	}
	return out
}

func TestFetch_RawPCM(t *testing.T) {
	speaker := llm.NewMockSpeaker(llm.MockSpeech{Response: &llm.SpeechResponse{
		Audio:    pcm(2400),
		MIMEType: "audio/L16;codec=pcm;rate=24000",
	}})
	c := New(speaker)

	buf, err := c.Fetch(context.Background(), "学习")
	require.NoError(t, err)
	assert.Equal(t, audio.SampleRate, buf.SampleRate)
	assert.Equal(t, 1, buf.Channels)
	assert.Len(t, buf.Samples, 2400)
	assert.InDelta(t, 0.5, buf.Samples[0], 1e-6)

	require.Equal(t, 1, speaker.CallCount())
	assert.Equal(t, "学习", speaker.Calls[0].Text)
}

func TestFetch_ResamplesOtherRates(t *testing.T) {
	c := New(llm.NewMockSpeaker(llm.MockSpeech{Response: &llm.SpeechResponse{
		Audio:    pcm(4800),
		MIMEType: "audio/pcm;rate=48000",
	}}))

	buf, err := c.Fetch(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, audio.SampleRate, buf.SampleRate)
	assert.Len(t, buf.Samples, 2400)
}

func TestFetch_WAVPayload(t *testing.T) {
	var wav bytes.Buffer
	require.NoError(t, audio.EncodeWAV(&wav, &audio.Buffer{
		SampleRate: 16000, Channels: 2, Samples: make([]float32, 3200),
	}))
	c := New(llm.NewMockSpeaker(llm.MockSpeech{Response: &llm.SpeechResponse{
		Audio: wav.Bytes(), MIMEType: "audio/wav",
	}}))

	buf, err := c.Fetch(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 1, buf.Channels)
	assert.Len(t, buf.Samples, 2400)
}

func TestFetch_NoSpeaker(t *testing.T) {
	_, err := New(nil).Fetch(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestFetch_NoAudio(t *testing.T) {
	tests := []struct {
		name string
		mock llm.MockSpeech
	}{
		{"provider reports none", llm.MockSpeech{Err: &llm.ErrNoAudio{Model: "mock-tts"}}},
		{"empty payload", llm.MockSpeech{Response: &llm.SpeechResponse{MIMEType: "audio/pcm"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(llm.NewMockSpeaker(tt.mock)).Fetch(context.Background(), "x")
			assert.ErrorIs(t, err, ErrNoAudio)
		})
	}
}

func TestFetch_ProviderError(t *testing.T) {
	c := New(llm.NewMockSpeaker(llm.MockSpeech{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}}))
	_, err := c.Fetch(context.Background(), "x")

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
	assert.NotErrorIs(t, err, ErrNoAudio)
}

func TestDecode_OddPCM(t *testing.T) {
	_, err := Decode(&llm.SpeechResponse{Audio: []byte{1, 2, 3}, MIMEType: "audio/pcm;rate=24000"})
	assert.ErrorIs(t, err, audio.ErrOddLength)
}

func TestPCMFormat(t *testing.T) {
	tests := []struct {
		mime        string
		rate, chans int
	}{
		{"audio/L16;codec=pcm;rate=24000", 24000, 1},
		{"audio/pcm;rate=16000;channels=2", 16000, 2},
		{"audio/pcm", 24000, 1},
		{"", 24000, 1},
	}
	for _, tt := range tests {
		rate, chans := pcmFormat(tt.mime)
		assert.Equal(t, tt.rate, rate, tt.mime)
		assert.Equal(t, tt.chans, chans, tt.mime)
	}
}
