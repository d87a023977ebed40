package results

import (
	"time"

	"github.com/abhisek/lexiz/internal/store"
)

// Record converts r into the row stored for a finished session.
func (r Result) Record(sessionID string, elapsed time.Duration) store.AssessmentResultData {
	levels := make([]store.AssessmentLevel, 0, len(r.Levels))
	for _, s := range r.Levels {
		levels = append(levels, store.AssessmentLevel{
			Level:   string(s.Level),
			Correct: s.Correct,
			Total:   s.Total,
		})
	}
	return store.AssessmentResultData{
		SessionID:    sessionID,
		Track:        string(r.Track),
		Score:        r.Score,
		Level:        string(r.Level),
		LevelLabel:   r.LevelLabel,
		Vocabulary:   r.Vocabulary,
		Correct:      r.Correct,
		Total:        r.Total,
		Levels:       levels,
		DurationSecs: int(elapsed.Round(time.Second) / time.Second),
	}
}
