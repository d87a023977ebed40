// Package results scores a finished quiz and estimates the learner's level
// and vocabulary size on the quiz's track.
package results

import (
	"math"

	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/track"
)

// PassThreshold is the per-level accuracy needed to pass a level.
const PassThreshold = 0.6

// Answer is the learner's choice for one question.
type Answer struct {
	// Index is the position of the question in the quiz.
	Index int `json:"index"`

	// Choice is the option text the learner picked.
	Choice string `json:"choice"`
}

// LevelStat is the tally for one level of the track.
type LevelStat struct {
	Level   track.Level `json:"level"`
	Correct int         `json:"correct"`
	Total   int         `json:"total"`
}

// Accuracy is Correct/Total, or 0 for a level with no questions.
func (s LevelStat) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Passed reports whether the level met PassThreshold.
func (s LevelStat) Passed() bool {
	return s.Accuracy() >= PassThreshold
}

// Result is the outcome of a quiz.
type Result struct {
	Track track.ID `json:"track"`

	// Score is the rounded percentage of correct answers.
	Score int `json:"score"`

	// Level is the highest passed level, or the floor level, or empty when
	// the learner is below the track's minimum.
	Level track.Level `json:"level,omitempty"`

	// LevelLabel is the display label, e.g. "HSK 3" or "Below HSK 1".
	LevelLabel string `json:"levelLabel"`

	Vocabulary string `json:"vocabulary"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`

	// Levels holds the tally of every level present in the question set, in
	// track order.
	Levels []LevelStat `json:"levels"`
}

// Estimate scores answers against questions on track t. Answers whose index
// is out of range are ignored; a question answered twice counts once using
// the first answer.
func Estimate(questions []quizgen.Question, answers []Answer, t *track.Track) Result {
	res := Result{Track: t.ID, Total: len(questions)}

	chosen := make(map[int]string, len(answers))
	for _, a := range answers {
		if a.Index < 0 || a.Index >= len(questions) {
			continue
		}
		if _, dup := chosen[a.Index]; dup {
			continue
		}
		chosen[a.Index] = a.Choice
	}

	tally := make(map[track.Level]*LevelStat)
	for i, q := range questions {
		st, ok := tally[q.Level]
		if !ok {
			st = &LevelStat{Level: q.Level}
			tally[q.Level] = st
		}
		st.Total++
		if choice, ok := chosen[i]; ok && q.IsCorrect(choice) {
			st.Correct++
			res.Correct++
		}
	}

	if res.Total > 0 {
		res.Score = int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	}

	for _, l := range t.Levels {
		if st, ok := tally[l]; ok {
			res.Levels = append(res.Levels, *st)
		}
	}

	passed, ok := highestPassed(t, tally)
	switch {
	case ok:
		res.Level = passed
		res.LevelLabel = t.Label(passed)
		res.Vocabulary = t.VocabularyFor(passed)
	case res.Score > track.FloorScore:
		res.Level = t.Floor
		res.LevelLabel = t.Label(t.Floor)
		res.Vocabulary = track.UnknownVocabulary
	default:
		res.LevelLabel = t.BelowMinimum
		res.Vocabulary = track.UnknownVocabulary
	}
	return res
}

// highestPassed walks the track's levels from easiest to hardest and
// returns the last level passed before the first failure. A level with no
// questions has accuracy 0 and stops the walk.
func highestPassed(t *track.Track, tally map[track.Level]*LevelStat) (track.Level, bool) {
	var passed track.Level
	found := false
	for _, l := range t.Levels {
		st, ok := tally[l]
		if !ok || !st.Passed() {
			break
		}
		passed = l
		found = true
	}
	return passed, found
}
