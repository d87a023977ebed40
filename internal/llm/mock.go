package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// mockQueue hands out canned results in FIFO order. Each request is
// appended to calls under the queue's lock.
type mockQueue[Req, Res any] struct {
	mu      sync.Mutex
	pending []Res
	calls   *[]Req
}

func (q *mockQueue[Req, Res]) next(req Req) (Res, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	*q.calls = append(*q.calls, req)
	var zero Res
	if len(q.pending) == 0 {
		return zero, false
	}
	res := q.pending[0]
	q.pending = q.pending[1:]
	return res, true
}

func (q *mockQueue[Req, Res]) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(*q.calls)
}

// MockResponse is a canned result for MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a Provider that replays canned responses. An exhausted
// queue answers with ErrProviderUnavailable.
type MockProvider struct {
	q mockQueue[Request, MockResponse]

	// Calls holds every request received, oldest first.
	Calls []Request
}

// NewMockProvider creates a MockProvider that replays responses in order.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	m := &MockProvider{}
	m.q = mockQueue[Request, MockResponse]{pending: responses, calls: &m.Calls}
	return m
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	resp, ok := m.q.next(req)
	if !ok {
		return nil, &ErrProviderUnavailable{}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      m.ModelID(),
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string { return "mock" }

// CallCount returns the number of Generate calls.
func (m *MockProvider) CallCount() int { return m.q.count() }

// MockSpeech is a canned result for MockSpeaker.
type MockSpeech struct {
	Response *SpeechResponse
	Err      error
}

// MockSpeaker is a Speaker that replays canned results. Once the queue is
// empty it answers with Fallback, or ErrProviderUnavailable when Fallback
// is nil.
type MockSpeaker struct {
	q mockQueue[SpeechRequest, MockSpeech]

	Fallback *SpeechResponse

	// Calls holds every request received, oldest first.
	Calls []SpeechRequest
}

// NewMockSpeaker creates a MockSpeaker that replays results in order.
func NewMockSpeaker(results ...MockSpeech) *MockSpeaker {
	m := &MockSpeaker{}
	m.q = mockQueue[SpeechRequest, MockSpeech]{pending: results, calls: &m.Calls}
	return m
}

func (m *MockSpeaker) Speak(_ context.Context, req SpeechRequest) (*SpeechResponse, error) {
	res, ok := m.q.next(req)
	switch {
	case !ok && m.Fallback != nil:
		return m.Fallback, nil
	case !ok:
		return nil, &ErrProviderUnavailable{}
	case res.Err != nil:
		return nil, res.Err
	}
	return res.Response, nil
}

// ModelID returns "mock-tts".
func (m *MockSpeaker) ModelID() string { return "mock-tts" }

// CallCount returns the number of Speak calls.
func (m *MockSpeaker) CallCount() int { return m.q.count() }
