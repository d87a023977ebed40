// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lexiz/ent/assessmentresult"
	"github.com/abhisek/lexiz/ent/schema"
)

// AssessmentResult is the model entity for the AssessmentResult schema.
type AssessmentResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the quiz session
	SessionID string `json:"session_id,omitempty"`
	// hsk, ielts or dele
	Track string `json:"track,omitempty"`
	// Percentage correct, 0 to 100
	Score int `json:"score,omitempty"`
	// Highest passed level; empty when none passed
	Level string `json:"level,omitempty"`
	// Display label of the estimate
	LevelLabel string `json:"level_label,omitempty"`
	// Estimated vocabulary size
	Vocabulary string `json:"vocabulary,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Per-level tally in track order
	Levels []schema.LevelTally `json:"levels,omitempty"`
	// Time from first question to completion
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentresult.FieldLevels:
			values[i] = new([]byte)
		case assessmentresult.FieldID, assessmentresult.FieldSequence, assessmentresult.FieldScore, assessmentresult.FieldCorrect, assessmentresult.FieldTotal, assessmentresult.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case assessmentresult.FieldSessionID, assessmentresult.FieldTrack, assessmentresult.FieldLevel, assessmentresult.FieldLevelLabel, assessmentresult.FieldVocabulary:
			values[i] = new(sql.NullString)
		case assessmentresult.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentResult fields.
func (_m *AssessmentResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentresult.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentresult.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case assessmentresult.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case assessmentresult.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case assessmentresult.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case assessmentresult.FieldLevelLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level_label", values[i])
			} else if value.Valid {
				_m.LevelLabel = value.String
			}
		case assessmentresult.FieldVocabulary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vocabulary", values[i])
			} else if value.Valid {
				_m.Vocabulary = value.String
			}
		case assessmentresult.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case assessmentresult.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case assessmentresult.FieldLevels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field levels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Levels); err != nil {
					return fmt.Errorf("unmarshal field levels: %w", err)
				}
			}
		case assessmentresult.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentResult.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentResult.
// Note that you need to call AssessmentResult.Unwrap() before calling this method if this AssessmentResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentResult) Update() *AssessmentResultUpdateOne {
	return NewAssessmentResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentResult) Unwrap() *AssessmentResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentResult) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("level_label=")
	builder.WriteString(_m.LevelLabel)
	builder.WriteString(", ")
	builder.WriteString("vocabulary=")
	builder.WriteString(_m.Vocabulary)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Levels))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentResults is a parsable slice of AssessmentResult.
type AssessmentResults []*AssessmentResult
