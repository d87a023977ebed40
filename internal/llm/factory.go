package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/lexiz/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
// A nil eventRepo skips logging.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewSpeaker creates a Speaker for the configured speech backend, wrapped
// with retry and logging middleware.
func NewSpeaker(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Speaker, error) {
	provider := cfg.SpeechProvider()
	sc := cfg.speechConfigFor(provider)

	var base Speaker
	var err error

	switch provider {
	case "gemini":
		base, err = NewGeminiSpeaker(ctx, cfg.Gemini.APIKey, sc)
	case "openai":
		base, err = NewOpenAISpeaker(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, sc)
	case "mock":
		return NewMockSpeaker(), nil
	case "":
		return nil, fmt.Errorf("no speech provider available for %q", cfg.Provider)
	default:
		return nil, fmt.Errorf("unknown speech provider: %q", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s speaker: %w", provider, err)
	}

	logged := WithSpeechLogging(base, eventRepo)
	return WithSpeechRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from LEXIZ_* variables, falling back
// to the standard vendor API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, ok := ConfigFromEnv().Discover()
	if !ok {
		return nil, fmt.Errorf("no LLM credentials found: %w", cfg.Validate())
	}
	return NewProvider(ctx, cfg, eventRepo)
}
