package llm

import "context"

// Speaker synthesizes speech audio from text.
type Speaker interface {
	// Speak returns the encoded audio payload for req.Text.
	Speak(ctx context.Context, req SpeechRequest) (*SpeechResponse, error)

	// ModelID returns the speech model identifier.
	ModelID() string
}

// SpeechRequest describes a single text-to-speech call.
type SpeechRequest struct {
	Text string

	// Voice overrides the configured voice when set.
	Voice string
}

// SpeechResponse is the audio payload as delivered by the provider.
type SpeechResponse struct {
	// Audio is PCM or WAV bytes. Inline base64 from the wire is already
	// decoded by the provider SDK.
	Audio []byte

	// MIMEType describes the decoded audio, e.g. "audio/L16;codec=pcm;rate=24000".
	MIMEType string

	// Model is the model that served the request.
	Model string
}
