// Code generated by ent, DO NOT EDIT.

package assessmentresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentresult type in the database.
	Label = "assessment_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTrack holds the string denoting the track field in the database.
	FieldTrack = "track"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldLevelLabel holds the string denoting the level_label field in the database.
	FieldLevelLabel = "level_label"
	// FieldVocabulary holds the string denoting the vocabulary field in the database.
	FieldVocabulary = "vocabulary"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldLevels holds the string denoting the levels field in the database.
	FieldLevels = "levels"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the assessmentresult in the database.
	Table = "assessment_results"
)

// Columns holds all SQL columns for assessmentresult fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTrack,
	FieldScore,
	FieldLevel,
	FieldLevelLabel,
	FieldVocabulary,
	FieldCorrect,
	FieldTotal,
	FieldLevels,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TrackValidator is a validator for the "track" field. It is called by the builders before save.
	TrackValidator func(string) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultVocabulary holds the default value on creation for the "vocabulary" field.
	DefaultVocabulary string
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the AssessmentResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTrack orders the results by the track field.
func ByTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrack, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByLevelLabel orders the results by the level_label field.
func ByLevelLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelLabel, opts...).ToFunc()
}

// ByVocabulary orders the results by the vocabulary field.
func ByVocabulary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVocabulary, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
