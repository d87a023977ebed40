package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/pronounce"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/results"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/track"
)

const batch = `{"questions":[
	{"question":"学习","options":["to study","to eat","to sleep","to run"],"correctAnswer":"to study","level":1},
	{"question":"经济","options":["economy","weather","history","music"],"correctAnswer":"economy","level":"4"}
]}`

var dbCounter atomic.Int64

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:lexiz_server_test_%d?mode=memory&cache=shared", dbCounter.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func newTestServer(gen quizgen.Generator, speaker llm.Speaker, repo store.ResultRepo) http.Handler {
	var pr *pronounce.Client
	if speaker != nil {
		pr = pronounce.New(speaker)
	}
	cfg := config.ServerConfig{AllowedOrigins: []string{"https://app.example"}}
	return New(cfg, gen, pr, repo).Router()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	h := newTestServer(nil, nil, nil)
	rec := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestListTracks(t *testing.T) {
	h := newTestServer(nil, nil, nil)
	rec := do(t, h, http.MethodGet, "/api/tracks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tracks []trackInfo
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &tracks))
	require.Len(t, tracks, 3)
	ids := []string{string(tracks[0].ID), string(tracks[1].ID), string(tracks[2].ID)}
	assert.ElementsMatch(t, []string{"hsk", "ielts", "dele"}, ids)
}

func TestGenerateQuiz(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	h := newTestServer(quizgen.New(provider, quizgen.DefaultConfig()), nil, nil)

	rec := do(t, h, http.MethodPost, "/api/quiz", quizRequest{Track: "hsk"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp quizResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "hsk", string(resp.Track))
	require.Len(t, resp.Questions, 2)
	for _, q := range resp.Questions {
		assert.True(t, q.Valid())
	}
}

func TestGenerateQuiz_UnknownTrack(t *testing.T) {
	h := newTestServer(quizgen.New(llm.NewMockProvider(), quizgen.DefaultConfig()), nil, nil)
	rec := do(t, h, http.MethodPost, "/api/quiz", quizRequest{Track: "toefl"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown_track", decode(t, rec).Error.Code)
}

func TestGenerateQuiz_NoCredential(t *testing.T) {
	h := newTestServer(quizgen.New(nil, quizgen.DefaultConfig()), nil, nil)
	rec := do(t, h, http.MethodPost, "/api/quiz", quizRequest{Track: "dele"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "no_credential", decode(t, rec).Error.Code)
}

func TestGenerateQuiz_ProviderFailure(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	h := newTestServer(quizgen.New(provider, quizgen.DefaultConfig()), nil, nil)
	rec := do(t, h, http.MethodPost, "/api/quiz", quizRequest{Track: "ielts"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "generation_failed", env.Error.Code)
	assert.NotEmpty(t, env.Error.Message)
}

func TestGenerateQuiz_BadJSON(t *testing.T) {
	h := newTestServer(quizgen.New(llm.NewMockProvider(), quizgen.DefaultConfig()), nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/quiz", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPronunciation_ReturnsWAV(t *testing.T) {
	pcm := make([]byte, 4800)
	speaker := llm.NewMockSpeaker(llm.MockSpeech{Response: &llm.SpeechResponse{
		Audio:    pcm,
		MIMEType: "audio/L16;codec=pcm;rate=24000",
	}})
	h := newTestServer(nil, speaker, nil)

	rec := do(t, h, http.MethodPost, "/api/pronunciation", pronunciationRequest{Text: "学习"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "audio/wav", rec.Header().Get("Content-Type"))
	require.True(t, audio.IsWAV(rec.Body.Bytes()))

	buf, err := audio.DecodeWAV(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, audio.SampleRate, buf.SampleRate)
	assert.Len(t, buf.Samples, 2400)
	assert.Equal(t, "学习", speaker.Calls[0].Text)
}

func TestPronunciation_Errors(t *testing.T) {
	tests := []struct {
		name    string
		speaker llm.Speaker
		text    string
		status  int
		code    string
	}{
		{"no speaker", nil, "学习", http.StatusServiceUnavailable, "no_credential"},
		{"empty text", llm.NewMockSpeaker(), "", http.StatusBadRequest, "invalid_request"},
		{"no audio", llm.NewMockSpeaker(llm.MockSpeech{Err: &llm.ErrNoAudio{}}), "学习", http.StatusBadGateway, "no_audio"},
		{"provider down", llm.NewMockSpeaker(), "学习", http.StatusBadGateway, "speech_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(nil, tt.speaker, nil)
			rec := do(t, h, http.MethodPost, "/api/pronunciation", pronunciationRequest{Text: tt.text})
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec).Error.Code)
		})
	}
}

func estimateBody(record bool) estimateRequest {
	var qs []quizgen.Question
	var as []results.Answer
	for _, lvl := range []string{"1", "2"} {
		for i := 0; i < 5; i++ {
			qs = append(qs, quizgen.Question{
				Text:    fmt.Sprintf("%s-%d", lvl, i),
				Options: []string{"a", "b", "c", "d"},
				Answer:  "a",
				Level:   track.Level(lvl),
			})
			choice := "a"
			if lvl == "2" && i >= 3 {
				choice = "b"
			}
			as = append(as, results.Answer{Index: len(qs) - 1, Choice: choice})
		}
	}
	return estimateRequest{Track: "hsk", SessionID: "s-1", Questions: qs, Answers: as, DurationSecs: 42, Record: record}
}

func TestEstimate(t *testing.T) {
	h := newTestServer(nil, nil, nil)
	rec := do(t, h, http.MethodPost, "/api/estimate", estimateBody(false))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res results.Result
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.Equal(t, 80, res.Score)
	assert.Equal(t, "HSK 2", res.LevelLabel)
	assert.Equal(t, 8, res.Correct)
	assert.Equal(t, 10, res.Total)
}

func TestEstimate_RecordsAndListsResults(t *testing.T) {
	st := openStore(t)
	h := newTestServer(nil, nil, st.ResultRepo())

	rec := do(t, h, http.MethodPost, "/api/estimate", estimateBody(true))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := st.ResultRepo().QueryResults(context.Background(), "hsk", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "s-1", stored[0].SessionID)
	assert.Equal(t, 42, stored[0].DurationSecs)

	rec = do(t, h, http.MethodGet, "/api/results?track=hsk&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []resultEntry
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "HSK 2", entries[0].LevelLabel)

	rec = do(t, h, http.MethodGet, "/api/results?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResultsRouteRequiresStore(t *testing.T) {
	h := newTestServer(nil, nil, nil)
	rec := do(t, h, http.MethodGet, "/api/results", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(nil, nil, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/quiz", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
