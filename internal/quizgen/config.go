package quizgen

import "math/rand/v2"

// DefaultBatchSize is the number of questions requested per quiz.
const DefaultBatchSize = 30

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// BatchSize is the number of questions requested from the provider.
	BatchSize int

	// MaxTokens is the token budget for the provider response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Rand shuffles options. Nil uses the global source.
	Rand *rand.Rand
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:   DefaultBatchSize,
		MaxTokens:   8192,
		Temperature: 0.8,
	}
}
