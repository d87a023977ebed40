// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/assessmentresult"
	"github.com/abhisek/lexiz/ent/predicate"
	"github.com/abhisek/lexiz/ent/schema"
)

// AssessmentResultUpdate is the builder for updating AssessmentResult entities.
type AssessmentResultUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdate) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentResultUpdate) SetSessionID(v string) *AssessmentResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableSessionID(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AssessmentResultUpdate) SetTrack(v string) *AssessmentResultUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableTrack(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResultUpdate) SetScore(v int) *AssessmentResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableScore(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResultUpdate) AddScore(v int) *AssessmentResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentResultUpdate) SetLevel(v string) *AssessmentResultUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableLevel(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLevelLabel sets the "level_label" field.
func (_u *AssessmentResultUpdate) SetLevelLabel(v string) *AssessmentResultUpdate {
	_u.mutation.SetLevelLabel(v)
	return _u
}

// SetNillableLevelLabel sets the "level_label" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableLevelLabel(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetLevelLabel(*v)
	}
	return _u
}

// SetVocabulary sets the "vocabulary" field.
func (_u *AssessmentResultUpdate) SetVocabulary(v string) *AssessmentResultUpdate {
	_u.mutation.SetVocabulary(v)
	return _u
}

// SetNillableVocabulary sets the "vocabulary" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableVocabulary(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetVocabulary(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentResultUpdate) SetCorrect(v int) *AssessmentResultUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableCorrect(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AssessmentResultUpdate) AddCorrect(v int) *AssessmentResultUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AssessmentResultUpdate) SetTotal(v int) *AssessmentResultUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableTotal(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AssessmentResultUpdate) AddTotal(v int) *AssessmentResultUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetLevels sets the "levels" field.
func (_u *AssessmentResultUpdate) SetLevels(v []schema.LevelTally) *AssessmentResultUpdate {
	_u.mutation.SetLevels(v)
	return _u
}

// AppendLevels appends value to the "levels" field.
func (_u *AssessmentResultUpdate) AppendLevels(v []schema.LevelTally) *AssessmentResultUpdate {
	_u.mutation.AppendLevels(v)
	return _u
}

// ClearLevels clears the value of the "levels" field.
func (_u *AssessmentResultUpdate) ClearLevels() *AssessmentResultUpdate {
	_u.mutation.ClearLevels()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentResultUpdate) SetDurationSecs(v int) *AssessmentResultUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableDurationSecs(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentResultUpdate) AddDurationSecs(v int) *AssessmentResultUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdate) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := assessmentresult.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.track": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(assessmentresult.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessmentresult.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelLabel(); ok {
		_spec.SetField(assessmentresult.FieldLevelLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vocabulary(); ok {
		_spec.SetField(assessmentresult.FieldVocabulary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(assessmentresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Levels(); ok {
		_spec.SetField(assessmentresult.FieldLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentresult.FieldLevels, value)
		})
	}
	if _u.mutation.LevelsCleared() {
		_spec.ClearField(assessmentresult.FieldLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentResultUpdateOne is the builder for updating a single AssessmentResult entity.
type AssessmentResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentResultUpdateOne) SetSessionID(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableSessionID(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AssessmentResultUpdateOne) SetTrack(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableTrack(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResultUpdateOne) SetScore(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableScore(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResultUpdateOne) AddScore(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentResultUpdateOne) SetLevel(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableLevel(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLevelLabel sets the "level_label" field.
func (_u *AssessmentResultUpdateOne) SetLevelLabel(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetLevelLabel(v)
	return _u
}

// SetNillableLevelLabel sets the "level_label" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableLevelLabel(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetLevelLabel(*v)
	}
	return _u
}

// SetVocabulary sets the "vocabulary" field.
func (_u *AssessmentResultUpdateOne) SetVocabulary(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetVocabulary(v)
	return _u
}

// SetNillableVocabulary sets the "vocabulary" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableVocabulary(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetVocabulary(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentResultUpdateOne) SetCorrect(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableCorrect(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AssessmentResultUpdateOne) AddCorrect(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AssessmentResultUpdateOne) SetTotal(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableTotal(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AssessmentResultUpdateOne) AddTotal(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetLevels sets the "levels" field.
func (_u *AssessmentResultUpdateOne) SetLevels(v []schema.LevelTally) *AssessmentResultUpdateOne {
	_u.mutation.SetLevels(v)
	return _u
}

// AppendLevels appends value to the "levels" field.
func (_u *AssessmentResultUpdateOne) AppendLevels(v []schema.LevelTally) *AssessmentResultUpdateOne {
	_u.mutation.AppendLevels(v)
	return _u
}

// ClearLevels clears the value of the "levels" field.
func (_u *AssessmentResultUpdateOne) ClearLevels() *AssessmentResultUpdateOne {
	_u.mutation.ClearLevels()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentResultUpdateOne) SetDurationSecs(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableDurationSecs(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentResultUpdateOne) AddDurationSecs(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdateOne) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdateOne) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentResultUpdateOne) Select(field string, fields ...string) *AssessmentResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentResult entity.
func (_u *AssessmentResultUpdateOne) Save(ctx context.Context) (*AssessmentResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) SaveX(ctx context.Context) *AssessmentResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := assessmentresult.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.track": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentresult.FieldID)
		for _, f := range fields {
			if !assessmentresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(assessmentresult.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessmentresult.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelLabel(); ok {
		_spec.SetField(assessmentresult.FieldLevelLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vocabulary(); ok {
		_spec.SetField(assessmentresult.FieldVocabulary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(assessmentresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(assessmentresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Levels(); ok {
		_spec.SetField(assessmentresult.FieldLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentresult.FieldLevels, value)
		})
	}
	if _u.mutation.LevelsCleared() {
		_spec.ClearField(assessmentresult.FieldLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AssessmentResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
