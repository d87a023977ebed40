package store

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/ent/assessmentresult"
	"github.com/abhisek/lexiz/ent/llmrequestevent"
)

var testDBCounter atomic.Int64

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:lexiz_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, want := range []string{llmrequestevent.Table, assessmentresult.Table, "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", want,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", want, err)
		}
		if name != want {
			t.Errorf("table name = %q, want %q", name, want)
		}
	}
}

func TestLLMEvents_AppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "question-gen",
		InputTokens: 100, OutputTokens: 2000, LatencyMs: 900, Success: true,
		RequestBody: "[user]\nGenerate 30 questions.", ResponseBody: `{"questions":[]}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini-2.5-flash-preview-tts", Model: "gemini-2.5-flash-preview-tts", Purpose: "pronunciation",
		LatencyMs: 300, Success: false, ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "pronunciation", events[0].Purpose, "newest first")
	assert.Equal(t, "question-gen", events[1].Purpose)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.False(t, events[0].Success)
	assert.True(t, events[1].Success)
	assert.WithinDuration(t, time.Now(), events[0].Timestamp, time.Minute)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	speech, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "pronunciation"})
	require.NoError(t, err)
	require.Len(t, speech, 1)
	assert.Equal(t, events[0].ID, speech[0].ID)

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "rate limited", failed[0].ErrorMessage)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, events[0].ID, after[0].ID)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"questions":[]}`, got.ResponseBody)
	assert.True(t, strings.HasPrefix(got.RequestBody, "[user]"))

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMEvents_Usage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: false},
		{Model: "gpt-4o-mini-tts", Purpose: "pronunciation", LatencyMs: 50, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMPurposeUsage{Purpose: "pronunciation", Calls: 1, AvgLatencyMs: 50}, byPurpose[0])
	assert.Equal(t, LLMPurposeUsage{
		Purpose: "question-gen", Calls: 2, Failures: 1,
		InputTokens: 40, OutputTokens: 60, AvgLatencyMs: 200,
	}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, LLMModelUsage{Model: "gpt-4o-mini", Calls: 2, InputTokens: 40, OutputTokens: 60}, byModel[0])
}

func TestResults_AppendQuerySummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendResult(ctx, AssessmentResultData{
		SessionID: "s1", Track: "hsk", Score: 60, Level: "3", LevelLabel: "HSK 3",
		Vocabulary: "~600 words", Correct: 18, Total: 30,
		Levels: []AssessmentLevel{{Level: "1", Correct: 5, Total: 5}, {Level: "2", Correct: 4, Total: 5}},
	}))
	require.NoError(t, repo.AppendResult(ctx, AssessmentResultData{
		SessionID: "s2", Track: "hsk", Score: 80, LevelLabel: "HSK 5", Correct: 24, Total: 30,
	}))
	require.NoError(t, repo.AppendResult(ctx, AssessmentResultData{
		SessionID: "s3", Track: "dele", Score: 10, LevelLabel: "Below DELE A1", Correct: 3, Total: 30,
	}))

	all, err := repo.QueryResults(ctx, "", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "s3", all[0].SessionID)

	hsk, err := repo.QueryResults(ctx, "hsk", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, hsk, 2)
	assert.Empty(t, hsk[0].Levels)
	assert.Equal(t, []AssessmentLevel{{Level: "1", Correct: 5, Total: 5}, {Level: "2", Correct: 4, Total: 5}}, hsk[1].Levels)

	summary, err := repo.SummaryByTrack(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "dele", summary[0].Track)
	assert.Equal(t, TrackSummary{Track: "hsk", Attempts: 2, BestScore: 80, AvgScore: 70}, summary[1])
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "question-gen", Success: true}))
	require.NoError(t, s.ResultRepo().AppendResult(ctx, AssessmentResultData{SessionID: "s", Track: "ielts"}))

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	results, err := s.ResultRepo().QueryResults(ctx, "", QueryOpts{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), events[0].Sequence)
	assert.Equal(t, int64(2), results[0].Sequence)
}
