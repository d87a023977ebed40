// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lexiz/ent/assessmentresult"
	"github.com/abhisek/lexiz/ent/schema"
)

// AssessmentResultCreate is the builder for creating a AssessmentResult entity.
type AssessmentResultCreate struct {
	config
	mutation *AssessmentResultMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentResultCreate) SetSequence(v int64) *AssessmentResultCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentResultCreate) SetTimestamp(v time.Time) *AssessmentResultCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableTimestamp(v *time.Time) *AssessmentResultCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentResultCreate) SetSessionID(v string) *AssessmentResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTrack sets the "track" field.
func (_c *AssessmentResultCreate) SetTrack(v string) *AssessmentResultCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentResultCreate) SetScore(v int) *AssessmentResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *AssessmentResultCreate) SetLevel(v string) *AssessmentResultCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableLevel(v *string) *AssessmentResultCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetLevelLabel sets the "level_label" field.
func (_c *AssessmentResultCreate) SetLevelLabel(v string) *AssessmentResultCreate {
	_c.mutation.SetLevelLabel(v)
	return _c
}

// SetVocabulary sets the "vocabulary" field.
func (_c *AssessmentResultCreate) SetVocabulary(v string) *AssessmentResultCreate {
	_c.mutation.SetVocabulary(v)
	return _c
}

// SetNillableVocabulary sets the "vocabulary" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableVocabulary(v *string) *AssessmentResultCreate {
	if v != nil {
		_c.SetVocabulary(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AssessmentResultCreate) SetCorrect(v int) *AssessmentResultCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *AssessmentResultCreate) SetTotal(v int) *AssessmentResultCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetLevels sets the "levels" field.
func (_c *AssessmentResultCreate) SetLevels(v []schema.LevelTally) *AssessmentResultCreate {
	_c.mutation.SetLevels(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *AssessmentResultCreate) SetDurationSecs(v int) *AssessmentResultCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableDurationSecs(v *int) *AssessmentResultCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_c *AssessmentResultCreate) Mutation() *AssessmentResultMutation {
	return _c.mutation
}

// Save creates the AssessmentResult in the database.
func (_c *AssessmentResultCreate) Save(ctx context.Context) (*AssessmentResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentResultCreate) SaveX(ctx context.Context) *AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentResultCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentresult.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := assessmentresult.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Vocabulary(); !ok {
		v := assessmentresult.DefaultVocabulary
		_c.mutation.SetVocabulary(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := assessmentresult.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentResultCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentResult.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentResult.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentResult.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "AssessmentResult.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := assessmentresult.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentResult.score"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AssessmentResult.level"`)}
	}
	if _, ok := _c.mutation.LevelLabel(); !ok {
		return &ValidationError{Name: "level_label", err: errors.New(`ent: missing required field "AssessmentResult.level_label"`)}
	}
	if _, ok := _c.mutation.Vocabulary(); !ok {
		return &ValidationError{Name: "vocabulary", err: errors.New(`ent: missing required field "AssessmentResult.vocabulary"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AssessmentResult.correct"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "AssessmentResult.total"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "AssessmentResult.duration_secs"`)}
	}
	return nil
}

func (_c *AssessmentResultCreate) sqlSave(ctx context.Context) (*AssessmentResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentResultCreate) createSpec() (*AssessmentResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentresult.Table, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentresult.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentresult.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(assessmentresult.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentresult.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(assessmentresult.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.LevelLabel(); ok {
		_spec.SetField(assessmentresult.FieldLevelLabel, field.TypeString, value)
		_node.LevelLabel = value
	}
	if value, ok := _c.mutation.Vocabulary(); ok {
		_spec.SetField(assessmentresult.FieldVocabulary, field.TypeString, value)
		_node.Vocabulary = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(assessmentresult.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(assessmentresult.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Levels(); ok {
		_spec.SetField(assessmentresult.FieldLevels, field.TypeJSON, value)
		_node.Levels = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentresult.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// AssessmentResultCreateBulk is the builder for creating many AssessmentResult entities in bulk.
type AssessmentResultCreateBulk struct {
	config
	err      error
	builders []*AssessmentResultCreate
}

// Save creates the AssessmentResult entities in the database.
func (_c *AssessmentResultCreateBulk) Save(ctx context.Context) ([]*AssessmentResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentResultCreateBulk) SaveX(ctx context.Context) []*AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
