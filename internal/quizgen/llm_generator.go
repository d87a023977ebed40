package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/track"
)

// ErrNoCredential is returned when no provider is configured.
var ErrNoCredential = errors.New("no API key configured")

// UserError is a question-generation failure carrying a message fit for
// display. The underlying provider error is kept for logging.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator. A nil provider is allowed; Generate then
// fails with a missing-credential error before any network call.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw provider response before shuffling and filtering.
type batchOutput struct {
	Questions []Question `json:"questions"`
}

// Generate requests a batch of questions for t.
func (g *LLMGenerator) Generate(ctx context.Context, t *track.Track) ([]Question, error) {
	if g.provider == nil {
		return nil, &UserError{
			Message: "No API key is configured. Set GEMINI_API_KEY (or another provider key) and try again.",
			Err:     ErrNoCredential,
		}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(t, g.config.BatchSize)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &UserError{
			Message: "Could not generate questions. Please check your connection and API key, then try again.",
			Err:     fmt.Errorf("LLM generation failed: %w", err),
		}
	}
	if len(resp.Content) == 0 {
		return nil, &UserError{
			Message: "The question service returned an empty response. Please try again.",
			Err:     errors.New("empty response"),
		}
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &UserError{
			Message: "The question service returned an unreadable response. Please try again.",
			Err:     fmt.Errorf("failed to parse LLM response: %w", err),
		}
	}

	questions := Prepare(raw.Questions, g.config.Rand)
	if len(questions) == 0 {
		return nil, &UserError{
			Message: "The question service returned no usable questions. Please try again.",
			Err:     fmt.Errorf("all %d questions failed validation", len(raw.Questions)),
		}
	}
	return questions, nil
}

// Prepare shuffles each question's options independently, then drops any
// question that does not have exactly four options including its answer.
func Prepare(questions []Question, r *rand.Rand) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		q.Options = shuffleOptions(q.Options, r)
		if !q.Valid() {
			continue
		}
		out = append(out, q)
	}
	return out
}

// shuffleOptions returns a shuffled copy of opts.
func shuffleOptions(opts []string, r *rand.Rand) []string {
	shuffled := make([]string, len(opts))
	copy(shuffled, opts)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if r != nil {
		r.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}
	return shuffled
}
