// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lexiz/ent/assessmentresult"
	"github.com/abhisek/lexiz/ent/llmrequestevent"
	"github.com/abhisek/lexiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentresultMixin := schema.AssessmentResult{}.Mixin()
	assessmentresultMixinFields0 := assessmentresultMixin[0].Fields()
	_ = assessmentresultMixinFields0
	assessmentresultFields := schema.AssessmentResult{}.Fields()
	_ = assessmentresultFields
	// assessmentresultDescTimestamp is the schema descriptor for timestamp field.
	assessmentresultDescTimestamp := assessmentresultMixinFields0[1].Descriptor()
	// assessmentresult.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentresult.DefaultTimestamp = assessmentresultDescTimestamp.Default.(func() time.Time)
	// assessmentresultDescSessionID is the schema descriptor for session_id field.
	assessmentresultDescSessionID := assessmentresultFields[0].Descriptor()
	// assessmentresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentresult.SessionIDValidator = assessmentresultDescSessionID.Validators[0].(func(string) error)
	// assessmentresultDescTrack is the schema descriptor for track field.
	assessmentresultDescTrack := assessmentresultFields[1].Descriptor()
	// assessmentresult.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	assessmentresult.TrackValidator = assessmentresultDescTrack.Validators[0].(func(string) error)
	// assessmentresultDescLevel is the schema descriptor for level field.
	assessmentresultDescLevel := assessmentresultFields[3].Descriptor()
	// assessmentresult.DefaultLevel holds the default value on creation for the level field.
	assessmentresult.DefaultLevel = assessmentresultDescLevel.Default.(string)
	// assessmentresultDescVocabulary is the schema descriptor for vocabulary field.
	assessmentresultDescVocabulary := assessmentresultFields[5].Descriptor()
	// assessmentresult.DefaultVocabulary holds the default value on creation for the vocabulary field.
	assessmentresult.DefaultVocabulary = assessmentresultDescVocabulary.Default.(string)
	// assessmentresultDescDurationSecs is the schema descriptor for duration_secs field.
	assessmentresultDescDurationSecs := assessmentresultFields[9].Descriptor()
	// assessmentresult.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	assessmentresult.DefaultDurationSecs = assessmentresultDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
