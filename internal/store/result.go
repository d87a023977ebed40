package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/lexiz/ent"
	"github.com/abhisek/lexiz/ent/assessmentresult"
)

// resultRepo implements ResultRepo backed by ent and the global sequence counter.
type resultRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *resultRepo) AppendResult(ctx context.Context, data AssessmentResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AssessmentResult.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTrack(data.Track).
		SetScore(data.Score).
		SetLevel(data.Level).
		SetLevelLabel(data.LevelLabel).
		SetVocabulary(data.Vocabulary).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetDurationSecs(data.DurationSecs)
	if len(data.Levels) > 0 {
		builder.SetLevels(data.Levels)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save assessment result: %w", err)
	}
	return nil
}

func (r *resultRepo) QueryResults(ctx context.Context, track string, opts QueryOpts) ([]AssessmentResultRecord, error) {
	query := r.client.AssessmentResult.Query().
		Order(ent.Desc(assessmentresult.FieldSequence))

	if track != "" {
		query = query.Where(assessmentresult.Track(track))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(assessmentresult.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(assessmentresult.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(assessmentresult.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		query = query.Where(assessmentresult.TimestampLTE(opts.To.UTC()))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment results: %w", err)
	}

	records := make([]AssessmentResultRecord, len(rows))
	for i, row := range rows {
		records[i] = AssessmentResultRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AssessmentResultData: AssessmentResultData{
				SessionID:    row.SessionID,
				Track:        row.Track,
				Score:        row.Score,
				Level:        row.Level,
				LevelLabel:   row.LevelLabel,
				Vocabulary:   row.Vocabulary,
				Correct:      row.Correct,
				Total:        row.Total,
				Levels:       row.Levels,
				DurationSecs: row.DurationSecs,
			},
		}
	}
	return records, nil
}

func (r *resultRepo) SummaryByTrack(ctx context.Context) ([]TrackSummary, error) {
	var rows []struct {
		Track     string  `json:"track"`
		Attempts  int     `json:"attempts"`
		BestScore int     `json:"best_score"`
		AvgScore  float64 `json:"avg_score"`
	}
	err := r.client.AssessmentResult.Query().
		GroupBy(assessmentresult.FieldTrack).
		Aggregate(
			ent.As(ent.Count(), "attempts"),
			ent.As(ent.Max(assessmentresult.FieldScore), "best_score"),
			ent.As(ent.Mean(assessmentresult.FieldScore), "avg_score"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query track summary: %w", err)
	}

	out := make([]TrackSummary, len(rows))
	for i, row := range rows {
		out[i] = TrackSummary(row)
	}
	slices.SortFunc(out, func(a, b TrackSummary) int { return strings.Compare(a.Track, b.Track) })
	return out, nil
}
