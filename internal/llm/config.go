package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all provider configuration.
type Config struct {
	// Provider selects the question-generation provider.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Speech     SpeechConfig     `yaml:"speech"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds a single request including retries.
	Timeout time.Duration `yaml:"timeout"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"` // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "gpt-4o-mini"
	BaseURL string `yaml:"base_url"` // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"` // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "google/gemini-2.5-flash"
	BaseURL string `yaml:"base_url"` // Default: "https://openrouter.ai/api/v1"
}

// SpeechConfig selects the text-to-speech backend. Credentials are shared
// with the matching text provider.
type SpeechConfig struct {
	// Provider is "gemini", "openai", "mock", or empty to follow the text
	// provider when it supports speech.
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Voice    string `yaml:"voice"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// speechDefaults holds the default model and voice per speech backend.
var speechDefaults = map[string]SpeechConfig{
	"gemini": {Model: "gemini-tts", Voice: "Kore"},
	"openai": {Model: "gpt-tts", Voice: "alloy"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 90 * time.Second,
	}
}

// ApplyEnv overlays LEXIZ_* environment variables onto cfg.
func (c Config) ApplyEnv() Config {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Provider, "LEXIZ_LLM_PROVIDER")

	set(&c.Anthropic.APIKey, "LEXIZ_ANTHROPIC_API_KEY")
	set(&c.Anthropic.Model, "LEXIZ_ANTHROPIC_MODEL")

	set(&c.OpenAI.APIKey, "LEXIZ_OPENAI_API_KEY")
	set(&c.OpenAI.Model, "LEXIZ_OPENAI_MODEL")
	set(&c.OpenAI.BaseURL, "LEXIZ_OPENAI_BASE_URL")

	set(&c.Gemini.APIKey, "LEXIZ_GEMINI_API_KEY")
	set(&c.Gemini.Model, "LEXIZ_GEMINI_MODEL")

	set(&c.OpenRouter.APIKey, "LEXIZ_OPENROUTER_API_KEY")
	set(&c.OpenRouter.Model, "LEXIZ_OPENROUTER_MODEL")

	set(&c.Speech.Provider, "LEXIZ_SPEECH_PROVIDER")
	set(&c.Speech.Model, "LEXIZ_SPEECH_MODEL")
	set(&c.Speech.Voice, "LEXIZ_SPEECH_VOICE")

	return c
}

// ConfigFromEnv builds a Config from defaults and environment variables.
func ConfigFromEnv() Config {
	return DefaultConfig().ApplyEnv()
}

// Discover fills in a provider from the standard API key variables
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY)
// when the selected provider has no key. It reports whether a usable
// provider was found.
func (c Config) Discover() (Config, bool) {
	if c.Validate() == nil {
		return c, true
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		c.Provider = "gemini"
		c.Gemini.APIKey = k
		return c, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		c.Provider = "openai"
		c.OpenAI.APIKey = k
		return c, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		c.Provider = "anthropic"
		c.Anthropic.APIKey = k
		return c, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		c.Provider = "openrouter"
		c.OpenRouter.APIKey = k
		return c, true
	}
	return c, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("LEXIZ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("LEXIZ_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("LEXIZ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("LEXIZ_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// SpeechProvider resolves which backend serves speech. Anthropic and
// OpenRouter have no speech endpoint; an empty result means pronunciation
// is unavailable.
func (c Config) SpeechProvider() string {
	if c.Speech.Provider != "" {
		return c.Speech.Provider
	}
	switch c.Provider {
	case "gemini", "openai", "mock":
		return c.Provider
	}
	if c.Gemini.APIKey != "" {
		return "gemini"
	}
	if c.OpenAI.APIKey != "" {
		return "openai"
	}
	return ""
}

// speechConfigFor fills unset speech model and voice with the backend's defaults.
func (c Config) speechConfigFor(provider string) SpeechConfig {
	sc := c.Speech
	d := speechDefaults[provider]
	if sc.Model == "" {
		sc.Model = d.Model
	}
	if sc.Voice == "" {
		sc.Voice = d.Voice
	}
	return sc
}

// resolveModel maps a friendly model name to a provider model ID.
// Names not in the map are used as-is.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
