package llm

import "context"

// Purposes recorded on LLM request events.
const (
	PurposeQuestions     = "question-gen"
	PurposePronunciation = "pronunciation"
	purposeUnknown       = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx so the logging decorators can record why a request
// was made.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return purposeUnknown
}
