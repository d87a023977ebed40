package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"questions":[1]}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)

	resp, err := mock.Generate(context.Background(), Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"questions":[1]}` || resp.Usage.InputTokens != 10 || resp.StopReason != "end" {
		t.Fatalf("unexpected first response: %+v", resp)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable once drained, got: %T", err)
	}

	if mock.CallCount() != 3 || len(mock.Calls) != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestMockSpeaker_FallbackAfterQueue(t *testing.T) {
	first := &SpeechResponse{Audio: []byte{1}}
	mock := NewMockSpeaker(MockSpeech{Response: first})

	if got, _ := mock.Speak(context.Background(), SpeechRequest{Text: "casa"}); got != first {
		t.Fatalf("expected queued response, got %+v", got)
	}
	if _, err := mock.Speak(context.Background(), SpeechRequest{Text: "perro"}); err == nil {
		t.Fatal("expected error without fallback")
	}

	mock.Fallback = &SpeechResponse{Audio: []byte{2}}
	got, err := mock.Speak(context.Background(), SpeechRequest{Text: "gato"})
	if err != nil || got != mock.Fallback {
		t.Fatalf("expected fallback, got %+v, %v", got, err)
	}
	if mock.Calls[2].Text != "gato" {
		t.Fatalf("expected third call for 'gato', got %q", mock.Calls[2].Text)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "")); p != "unknown" {
		t.Fatalf("empty purpose should read as 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposePronunciation)
	if p := PurposeFrom(ctx); p != "pronunciation" {
		t.Fatalf("expected 'pronunciation', got %q", p)
	}
}

func TestPermanent(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", fmt.Errorf("generate: %w", context.DeadlineExceeded), true},
		{"truncated", &ErrMaxTokensExceeded{}, true},
		{"no audio", fmt.Errorf("speak: %w", &ErrNoAudio{Model: "tts"}), true},
		{"rate limit", &ErrRateLimit{}, false},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad")}, false},
		{"unavailable", &ErrProviderUnavailable{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Permanent(tt.err); got != tt.want {
				t.Errorf("Permanent(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
