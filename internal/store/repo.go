package store

import (
	"context"
	"time"

	"github.com/abhisek/lexiz/ent/schema"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// Purpose narrows LLM event queries to one purpose label.
	Purpose string

	// FailedOnly keeps only LLM events that ended in an error.
	FailedOnly bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with the given ID, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// AssessmentLevel is the per-level tally stored with a result.
type AssessmentLevel = schema.LevelTally

// AssessmentResultData captures one completed assessment.
type AssessmentResultData struct {
	SessionID    string
	Track        string
	Score        int
	Level        string // passed level, empty when none passed
	LevelLabel   string
	Vocabulary   string
	Correct      int
	Total        int
	Levels       []AssessmentLevel
	DurationSecs int
}

// AssessmentResultRecord is a stored assessment result.
type AssessmentResultRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessmentResultData
}

// TrackSummary aggregates past results for one track.
type TrackSummary struct {
	Track     string
	Attempts  int
	BestScore int
	AvgScore  float64
}

// ResultRepo stores completed assessments.
type ResultRepo interface {
	AppendResult(ctx context.Context, data AssessmentResultData) error

	// QueryResults returns results newest first. An empty track matches all.
	QueryResults(ctx context.Context, track string, opts QueryOpts) ([]AssessmentResultRecord, error)

	SummaryByTrack(ctx context.Context) ([]TrackSummary, error)
}
