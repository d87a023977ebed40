package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider wraps OpenAIProvider with OpenRouter defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	client, err := newOpenAIClient(cfg.APIKey, baseURL)
	if err != nil {
		return nil, err
	}

	// OpenRouter model IDs are namespaced ("google/gemini-2.5-flash") and
	// passed through untouched.
	return &OpenRouterProvider{OpenAIProvider: &OpenAIProvider{client: client, model: cfg.Model}}, nil
}
