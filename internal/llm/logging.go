package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/abhisek/lexiz/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. A nil repo returns p unchanged.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	if repo == nil {
		return p
	}
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	appendEvent(ctx, l.eventRepo, data)
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// LoggingSpeaker records every speech request as an LLM request event.
// Audio payloads are summarized, not stored.
type LoggingSpeaker struct {
	inner     Speaker
	eventRepo store.EventRepo
}

// WithSpeechLogging wraps a Speaker with event logging. A nil repo returns s unchanged.
func WithSpeechLogging(s Speaker, repo store.EventRepo) Speaker {
	if repo == nil {
		return s
	}
	return &LoggingSpeaker{inner: s, eventRepo: repo}
}

func (l *LoggingSpeaker) Speak(ctx context.Context, req SpeechRequest) (*SpeechResponse, error) {
	start := time.Now()

	resp, err := l.inner.Speak(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: fmt.Sprintf("[speech voice=%q]\n%s", req.Voice, req.Text),
	}
	if resp != nil {
		data.Model = resp.Model
		data.ResponseBody = fmt.Sprintf("[audio %s, %d bytes]", resp.MIMEType, len(resp.Audio))
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	appendEvent(ctx, l.eventRepo, data)
	return resp, err
}

func (l *LoggingSpeaker) ModelID() string {
	return l.inner.ModelID()
}

// appendEvent logs the event but never fails the request.
func appendEvent(ctx context.Context, repo store.EventRepo, data store.LLMRequestEventData) {
	if err := repo.AppendLLMRequest(context.WithoutCancel(ctx), data); err != nil {
		log.Printf("warning: failed to log LLM request event: %v", err)
	}
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
