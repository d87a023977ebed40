package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/track"
)

const systemPrompt = `You are a language examiner writing a vocabulary placement test.

Rules:
- Generate multiple-choice vocabulary questions spread evenly across every level listed, from the easiest to the hardest.
- Each question has exactly 4 options. Exactly one option is correct and it must appear verbatim in "correctAnswer".
- Distractors should be plausible words from a similar level, not random or absurd.
- Do not repeat a target word within the batch.
- The "level" field must be one of the listed levels, written exactly as listed.
- Keep context sentences short. Leave "context" empty when a sentence would give the answer away.`

// buildUserMessage constructs the user message for a track and batch size.
func buildUserMessage(t *track.Track, count int) string {
	levels := make([]string, len(t.Levels))
	for i, l := range t.Levels {
		levels[i] = string(l)
	}
	perLevel := count / len(t.Levels)
	if perLevel < 1 {
		perLevel = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Track: %s\n", t.Name)
	fmt.Fprintf(&b, "Language: %s\n", t.Language)
	fmt.Fprintf(&b, "Levels (easiest first): %s\n", strings.Join(levels, ", "))
	fmt.Fprintf(&b, "Number of questions: %d (about %d per level)\n", count, perLevel)
	b.WriteString("\nFormat:\n")
	b.WriteString(t.PromptGuide)
	return b.String()
}
