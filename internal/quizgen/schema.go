package quizgen

import "github.com/abhisek/lexiz/internal/llm"

// BatchSchema defines the JSON schema for a question batch response.
var BatchSchema = &llm.Schema{
	Name:        "vocabulary-questions",
	Description: "A batch of leveled multiple-choice vocabulary questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The word or prompt shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options, one of them correct",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The exact text of the correct option",
						},
						"level": map[string]any{
							"type":        "string",
							"description": "The track level this word belongs to",
						},
						"context": map[string]any{
							"type":        "string",
							"description": "Optional example sentence using the word; empty if none",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "level", "context"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
