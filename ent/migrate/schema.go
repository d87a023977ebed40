// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentResultsColumns holds the columns for the "assessment_results" table.
	AssessmentResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "track", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "level", Type: field.TypeString, Default: ""},
		{Name: "level_label", Type: field.TypeString},
		{Name: "vocabulary", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "levels", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// AssessmentResultsTable holds the schema information for the "assessment_results" table.
	AssessmentResultsTable = &schema.Table{
		Name:       "assessment_results",
		Columns:    AssessmentResultsColumns,
		PrimaryKey: []*schema.Column{AssessmentResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentresult_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResultsColumns[1]},
			},
			{
				Name:    "assessmentresult_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResultsColumns[2]},
			},
			{
				Name:    "assessmentresult_track",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResultsColumns[4]},
			},
			{
				Name:    "assessmentresult_session_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResultsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentResultsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
