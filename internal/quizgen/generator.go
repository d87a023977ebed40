package quizgen

import (
	"context"

	"github.com/abhisek/lexiz/internal/track"
)

// Generator produces a batch of vocabulary questions for a track.
type Generator interface {
	// Generate returns shuffled, validated questions. Every returned
	// question has exactly four options including its answer.
	Generate(ctx context.Context, t *track.Track) ([]Question, error)
}
