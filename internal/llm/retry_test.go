package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_Generate(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(`{"questions":[]}`)}
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	invalid := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"questions":`), Err: errors.New("truncated JSON")}}

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{ok}, false, 1},
		{"outage then success", []MockResponse{down, ok}, false, 2},
		{"outage every time", []MockResponse{down, down, down, ok}, true, 3},
		{"rate limit honors retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, ok}, false, 2},
		{"invalid response retried once", []MockResponse{invalid, invalid, ok}, true, 2},
		{"invalid then valid", []MockResponse{invalid, ok}, false, 2},
		{"truncated batch not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, ok}, true, 1},
		{"rejected key not retried", []MockResponse{{Err: &ErrUnauthorized{Err: errors.New("401")}}, ok}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && string(resp.Content) != `{"questions":[]}` {
				t.Errorf("unexpected content: %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, mock.CallCount())
			}
		})
	}
}

func TestRetry_StopsWhenContextCanceled(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	p := WithRetry(mock, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestBackoff(t *testing.T) {
	cfg := retryConfig()

	rl := &ErrRateLimit{RetryAfter: 3 * time.Second}
	if got := backoff(cfg, 0, rl); got != 3*time.Second {
		t.Errorf("rate limit backoff = %s, want 3s", got)
	}

	// Attempt 10 would be 1ms * 2^10 without the cap; jitter is ±20%.
	got := backoff(cfg, 10, errors.New("down"))
	if got < 8*time.Millisecond || got > 12*time.Millisecond {
		t.Errorf("capped backoff = %s, want within 20%% of 10ms", got)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if id := WithRetry(NewMockProvider(), retryConfig()).ModelID(); id != "mock" {
		t.Fatalf("expected 'mock', got %q", id)
	}
	if id := WithSpeechRetry(NewMockSpeaker(), retryConfig()).ModelID(); id != "mock-tts" {
		t.Fatalf("expected 'mock-tts', got %q", id)
	}
}

func TestSpeechRetry(t *testing.T) {
	audio := &SpeechResponse{Audio: []byte{1, 2}, Model: "mock-tts"}

	tests := []struct {
		name      string
		results   []MockSpeech
		wantErr   bool
		wantCalls int
	}{
		{"rate limit then audio", []MockSpeech{{Err: &ErrRateLimit{Err: errors.New("429")}}, {Response: audio}}, false, 2},
		{"no audio not retried", []MockSpeech{{Err: &ErrNoAudio{Model: "mock-tts"}}, {Response: audio}}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockSpeaker(tt.results...)
			s := WithSpeechRetry(mock, retryConfig())

			got, err := s.Speak(context.Background(), SpeechRequest{Text: "你好"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Speak() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != audio {
				t.Errorf("unexpected response: %+v", got)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, mock.CallCount())
			}
		})
	}
}
