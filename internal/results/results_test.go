package results

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/track"
)

func mustTrack(t *testing.T, id track.ID) *track.Track {
	t.Helper()
	tr, err := track.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

// buildQuiz makes perLevel questions for each given level, answering the
// first correct[level] of them correctly and the rest wrongly.
func buildQuiz(levels []track.Level, perLevel int, correct map[track.Level]int) ([]quizgen.Question, []Answer) {
	var qs []quizgen.Question
	var as []Answer
	for _, l := range levels {
		for i := 0; i < perLevel; i++ {
			q := quizgen.Question{
				Text:    fmt.Sprintf("%s-%d", l, i),
				Options: []string{"right", "w1", "w2", "w3"},
				Answer:  "right",
				Level:   l,
			}
			choice := "w1"
			if i < correct[l] {
				choice = "right"
			}
			as = append(as, Answer{Index: len(qs), Choice: choice})
			qs = append(qs, q)
		}
	}
	return qs, as
}

func TestEstimate_ScoreRounding(t *testing.T) {
	hsk := mustTrack(t, track.HSK)
	levels := hsk.Levels
	// 18 correct of 30: 3 per level for all six levels.
	correct := map[track.Level]int{}
	for _, l := range levels {
		correct[l] = 3
	}
	qs, as := buildQuiz(levels, 5, correct)

	res := Estimate(qs, as, hsk)
	if res.Score != 60 {
		t.Errorf("score = %d, want 60", res.Score)
	}
	if res.Correct != 18 || res.Total != 30 {
		t.Errorf("counts = %d/%d, want 18/30", res.Correct, res.Total)
	}
	if res.LevelLabel != "HSK 6" {
		t.Errorf("label = %q, want HSK 6", res.LevelLabel)
	}
}

func TestEstimate_RoundsHalfUp(t *testing.T) {
	hsk := mustTrack(t, track.HSK)
	// 2 of 3 = 66.67 -> 67.
	qs, as := buildQuiz([]track.Level{"1"}, 3, map[track.Level]int{"1": 2})
	if got := Estimate(qs, as, hsk).Score; got != 67 {
		t.Errorf("score = %d, want 67", got)
	}
}

func TestEstimate_AllLevelsPassReturnsMaxLevel(t *testing.T) {
	for _, tr := range track.All() {
		t.Run(string(tr.ID), func(t *testing.T) {
			correct := map[track.Level]int{}
			for _, l := range tr.Levels {
				correct[l] = 5
			}
			qs, as := buildQuiz(tr.Levels, 5, correct)

			res := Estimate(qs, as, tr)
			top := tr.Levels[len(tr.Levels)-1]
			if res.Level != top {
				t.Errorf("level = %q, want %q", res.Level, top)
			}
			if res.LevelLabel != tr.Label(top) {
				t.Errorf("label = %q", res.LevelLabel)
			}
			if res.Vocabulary != tr.Vocabulary[top] {
				t.Errorf("vocabulary = %q, want %q", res.Vocabulary, tr.Vocabulary[top])
			}
		})
	}
}

func TestEstimate_StopsAtFirstFailure(t *testing.T) {
	hsk := mustTrack(t, track.HSK)
	qs, as := buildQuiz(hsk.Levels, 5, map[track.Level]int{
		"1": 5, "2": 4, "3": 3, "4": 2, "5": 5, "6": 5,
	})

	res := Estimate(qs, as, hsk)
	if res.Level != "3" {
		t.Fatalf("level = %q, want 3", res.Level)
	}
	if res.LevelLabel != "HSK 3" {
		t.Errorf("label = %q, want HSK 3", res.LevelLabel)
	}
	if res.Vocabulary != "~600 words" {
		t.Errorf("vocabulary = %q, want ~600 words", res.Vocabulary)
	}
}

func TestEstimate_MissingIntermediateLevelFails(t *testing.T) {
	hsk := mustTrack(t, track.HSK)
	qs, as := buildQuiz([]track.Level{"1", "2", "4", "5"}, 5, map[track.Level]int{
		"1": 5, "2": 5, "4": 5, "5": 5,
	})

	res := Estimate(qs, as, hsk)
	if res.Level != "2" {
		t.Fatalf("level = %q, want 2", res.Level)
	}
	if len(res.Levels) != 4 {
		t.Errorf("breakdown has %d levels, want only the 4 present", len(res.Levels))
	}
}

func TestEstimate_FirstLevelFailure(t *testing.T) {
	tests := []struct {
		name      string
		track     track.ID
		correct   map[track.Level]int
		wantLabel string
		wantLevel track.Level
	}{
		{
			// 2 of 30 = 7%.
			name: "hsk below minimum", track: track.HSK,
			correct:   map[track.Level]int{"1": 2},
			wantLabel: "Below HSK 1",
		},
		{
			// Level 1 fails (2/5) but 11/30 = 37% clears the floor.
			name: "hsk floor", track: track.HSK,
			correct:   map[track.Level]int{"1": 2, "2": 5, "3": 4},
			wantLabel: "HSK 1", wantLevel: "1",
		},
		{
			name: "ielts floor", track: track.IELTS,
			correct:   map[track.Level]int{"4": 2, "5": 5, "6": 5},
			wantLabel: "IELTS Band 3.5", wantLevel: "3.5",
		},
		{
			name: "dele below minimum", track: track.DELE,
			correct:   map[track.Level]int{"A1": 1, "A2": 1},
			wantLabel: "Below DELE A1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mustTrack(t, tt.track)
			qs, as := buildQuiz(tr.Levels, 5, tt.correct)

			res := Estimate(qs, as, tr)
			if res.LevelLabel != tt.wantLabel {
				t.Errorf("label = %q, want %q (score %d)", res.LevelLabel, tt.wantLabel, res.Score)
			}
			if res.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", res.Level, tt.wantLevel)
			}
			if res.Vocabulary != track.UnknownVocabulary {
				t.Errorf("vocabulary = %q, want %q", res.Vocabulary, track.UnknownVocabulary)
			}
		})
	}
}

func TestEstimate_ScoreExactlyTwentyIsBelowMinimum(t *testing.T) {
	hsk := mustTrack(t, track.HSK)
	// 1 of 5 = 20%, not > 20.
	qs, as := buildQuiz([]track.Level{"1"}, 5, map[track.Level]int{"1": 1})

	res := Estimate(qs, as, hsk)
	if res.Score != 20 || res.LevelLabel != "Below HSK 1" {
		t.Fatalf("got score %d label %q", res.Score, res.LevelLabel)
	}
}

func TestEstimate_Empty(t *testing.T) {
	res := Estimate(nil, nil, mustTrack(t, track.DELE))
	if res.Score != 0 || res.Total != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.LevelLabel != "Below DELE A1" {
		t.Errorf("label = %q", res.LevelLabel)
	}
}

func TestEstimate_IgnoresBadAndDuplicateAnswers(t *testing.T) {
	hsk := mustTrack(t, track.HSK)
	qs, _ := buildQuiz([]track.Level{"1"}, 2, nil)
	answers := []Answer{
		{Index: 0, Choice: "w1"},
		{Index: 0, Choice: "right"},
		{Index: 7, Choice: "right"},
		{Index: -1, Choice: "right"},
		{Index: 1, Choice: "right"},
	}

	res := Estimate(qs, answers, hsk)
	if res.Correct != 1 {
		t.Fatalf("correct = %d, want 1", res.Correct)
	}
}

func TestEstimate_BreakdownInTrackOrder(t *testing.T) {
	dele := mustTrack(t, track.DELE)
	qs := []quizgen.Question{
		{Options: []string{"a", "b", "c", "d"}, Answer: "a", Level: "C1"},
		{Options: []string{"a", "b", "c", "d"}, Answer: "a", Level: "A1"},
		{Options: []string{"a", "b", "c", "d"}, Answer: "a", Level: "B2"},
	}
	res := Estimate(qs, []Answer{{0, "a"}, {1, "a"}, {2, "b"}}, dele)

	want := []LevelStat{{"A1", 1, 1}, {"B2", 0, 1}, {"C1", 1, 1}}
	if len(res.Levels) != len(want) {
		t.Fatalf("levels = %+v", res.Levels)
	}
	for i := range want {
		if res.Levels[i] != want[i] {
			t.Errorf("levels[%d] = %+v, want %+v", i, res.Levels[i], want[i])
		}
	}
}

func TestResultRecord(t *testing.T) {
	hsk := mustTrack(t, track.HSK)
	qs, as := buildQuiz([]track.Level{"1", "2"}, 5, map[track.Level]int{"1": 5, "2": 3})
	res := Estimate(qs, as, hsk)

	rec := res.Record("sess-1", 95*time.Second+600*time.Millisecond)
	if rec.SessionID != "sess-1" || rec.Track != "hsk" {
		t.Fatalf("unexpected identity: %+v", rec)
	}
	if rec.Score != res.Score || rec.LevelLabel != res.LevelLabel || rec.Vocabulary != res.Vocabulary {
		t.Fatalf("record does not mirror result: %+v vs %+v", rec, res)
	}
	if rec.DurationSecs != 96 {
		t.Fatalf("DurationSecs = %d, want 96", rec.DurationSecs)
	}
	if len(rec.Levels) != 2 || rec.Levels[1].Level != "2" || rec.Levels[1].Correct != 3 {
		t.Fatalf("unexpected levels: %+v", rec.Levels)
	}
}
