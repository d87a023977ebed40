// Code generated by ent, DO NOT EDIT.

package assessmentresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lexiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldSessionID, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldTrack, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldScore, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldLevel, v))
}

// LevelLabel applies equality check predicate on the "level_label" field. It's identical to LevelLabelEQ.
func LevelLabel(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldLevelLabel, v))
}

// Vocabulary applies equality check predicate on the "vocabulary" field. It's identical to VocabularyEQ.
func Vocabulary(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldVocabulary, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldCorrect, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldTotal, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldSessionID, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldTrack, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldScore, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldLevel, v))
}

// LevelLabelEQ applies the EQ predicate on the "level_label" field.
func LevelLabelEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldLevelLabel, v))
}

// LevelLabelNEQ applies the NEQ predicate on the "level_label" field.
func LevelLabelNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldLevelLabel, v))
}

// LevelLabelIn applies the In predicate on the "level_label" field.
func LevelLabelIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldLevelLabel, vs...))
}

// LevelLabelNotIn applies the NotIn predicate on the "level_label" field.
func LevelLabelNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldLevelLabel, vs...))
}

// LevelLabelGT applies the GT predicate on the "level_label" field.
func LevelLabelGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldLevelLabel, v))
}

// LevelLabelGTE applies the GTE predicate on the "level_label" field.
func LevelLabelGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldLevelLabel, v))
}

// LevelLabelLT applies the LT predicate on the "level_label" field.
func LevelLabelLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldLevelLabel, v))
}

// LevelLabelLTE applies the LTE predicate on the "level_label" field.
func LevelLabelLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldLevelLabel, v))
}

// LevelLabelContains applies the Contains predicate on the "level_label" field.
func LevelLabelContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldLevelLabel, v))
}

// LevelLabelHasPrefix applies the HasPrefix predicate on the "level_label" field.
func LevelLabelHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldLevelLabel, v))
}

// LevelLabelHasSuffix applies the HasSuffix predicate on the "level_label" field.
func LevelLabelHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldLevelLabel, v))
}

// LevelLabelEqualFold applies the EqualFold predicate on the "level_label" field.
func LevelLabelEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldLevelLabel, v))
}

// LevelLabelContainsFold applies the ContainsFold predicate on the "level_label" field.
func LevelLabelContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldLevelLabel, v))
}

// VocabularyEQ applies the EQ predicate on the "vocabulary" field.
func VocabularyEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldVocabulary, v))
}

// VocabularyNEQ applies the NEQ predicate on the "vocabulary" field.
func VocabularyNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldVocabulary, v))
}

// VocabularyIn applies the In predicate on the "vocabulary" field.
func VocabularyIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldVocabulary, vs...))
}

// VocabularyNotIn applies the NotIn predicate on the "vocabulary" field.
func VocabularyNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldVocabulary, vs...))
}

// VocabularyGT applies the GT predicate on the "vocabulary" field.
func VocabularyGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldVocabulary, v))
}

// VocabularyGTE applies the GTE predicate on the "vocabulary" field.
func VocabularyGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldVocabulary, v))
}

// VocabularyLT applies the LT predicate on the "vocabulary" field.
func VocabularyLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldVocabulary, v))
}

// VocabularyLTE applies the LTE predicate on the "vocabulary" field.
func VocabularyLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldVocabulary, v))
}

// VocabularyContains applies the Contains predicate on the "vocabulary" field.
func VocabularyContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldVocabulary, v))
}

// VocabularyHasPrefix applies the HasPrefix predicate on the "vocabulary" field.
func VocabularyHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldVocabulary, v))
}

// VocabularyHasSuffix applies the HasSuffix predicate on the "vocabulary" field.
func VocabularyHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldVocabulary, v))
}

// VocabularyEqualFold applies the EqualFold predicate on the "vocabulary" field.
func VocabularyEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldVocabulary, v))
}

// VocabularyContainsFold applies the ContainsFold predicate on the "vocabulary" field.
func VocabularyContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldVocabulary, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldCorrect, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldTotal, v))
}

// LevelsIsNil applies the IsNil predicate on the "levels" field.
func LevelsIsNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIsNull(FieldLevels))
}

// LevelsNotNil applies the NotNil predicate on the "levels" field.
func LevelsNotNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotNull(FieldLevels))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.NotPredicates(p))
}
