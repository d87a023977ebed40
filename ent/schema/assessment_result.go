package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentResult records one completed placement quiz.
type AssessmentResult struct {
	ent.Schema
}

func (AssessmentResult) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// LevelTally is the per-level count stored with a result.
type LevelTally struct {
	Level   string `json:"level"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

func (AssessmentResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the quiz session"),
		field.String("track").
			NotEmpty().
			Comment("hsk, ielts or dele"),
		field.Int("score").
			Comment("Percentage correct, 0 to 100"),
		field.String("level").
			Default("").
			Comment("Highest passed level; empty when none passed"),
		field.String("level_label").
			Comment("Display label of the estimate"),
		field.String("vocabulary").
			Default("").
			Comment("Estimated vocabulary size"),
		field.Int("correct"),
		field.Int("total"),
		field.JSON("levels", []LevelTally{}).
			Optional().
			Comment("Per-level tally in track order"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time from first question to completion"),
	}
}

func (AssessmentResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("track"),
		index.Fields("session_id"),
	}
}
