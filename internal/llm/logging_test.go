package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/lexiz/internal/store"
)

// recordingRepo captures appended events in memory.
type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *recordingRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsGenerate(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"questions":[]}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "question-gen")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "HSK please"}},
		Schema:   wordSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "question-gen" || !ev.Success {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Fatalf("tokens = %d/%d, want 12/34", ev.InputTokens, ev.OutputTokens)
	}
	for _, want := range []string{"[system]", "[user]\nHSK please", "[schema: test-object]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
	if ev.ResponseBody != `{"questions":[]}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogging_NilRepoIsPassThrough(t *testing.T) {
	mock := NewMockProvider()
	if got := WithLogging(mock, nil); got != Provider(mock) {
		t.Fatalf("expected the inner provider back, got %T", got)
	}
}

func TestSpeechLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	s := WithSpeechLogging(NewMockSpeaker(MockSpeech{Err: &ErrNoAudio{Model: "mock-tts"}}), repo)

	ctx := WithPurpose(context.Background(), "pronunciation")
	if _, err := s.Speak(ctx, SpeechRequest{Text: "¿Dónde está?"}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success || ev.Purpose != "pronunciation" || ev.ErrorMessage == "" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "¿Dónde está?") {
		t.Errorf("request body = %q", ev.RequestBody)
	}
}

func TestSpeechLogging_SummarizesAudio(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockSpeaker(MockSpeech{Response: &SpeechResponse{
		Audio: make([]byte, 480), MIMEType: "audio/pcm;rate=24000", Model: "mock-tts",
	}})
	s := WithSpeechLogging(mock, repo)

	if _, err := s.Speak(context.Background(), SpeechRequest{Text: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.events[0].ResponseBody; got != "[audio audio/pcm;rate=24000, 480 bytes]" {
		t.Errorf("response body = %q", got)
	}
}
