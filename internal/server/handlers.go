package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/pronounce"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/results"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/track"
)

// Response helpers

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Error: &apiError{Code: code, Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func lookupTrack(w http.ResponseWriter, id string) (*track.Track, bool) {
	t, err := track.Get(track.ID(id))
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown_track", err.Error())
		return nil, false
	}
	return t, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"pronunciation": s.pronouncer.Available(),
		"time":          time.Now().UTC().Format(time.RFC3339),
	})
}

// Tracks

type trackInfo struct {
	ID       track.ID      `json:"id"`
	Name     string        `json:"name"`
	Language string        `json:"language"`
	Levels   []track.Level `json:"levels"`
	Prefix   string        `json:"labelPrefix"`
}

func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	all := track.All()
	out := make([]trackInfo, 0, len(all))
	for _, t := range all {
		out = append(out, trackInfo{
			ID:       t.ID,
			Name:     t.Name,
			Language: t.Language,
			Levels:   t.Levels,
			Prefix:   t.LabelPrefix,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// Quiz generation

type quizRequest struct {
	Track string `json:"track"`
}

type quizResponse struct {
	SessionID string             `json:"sessionId"`
	Track     track.ID           `json:"track"`
	Questions []quizgen.Question `json:"questions"`
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if !decodeBody(w, r, &req) {
		return
	}
	t, ok := lookupTrack(w, req.Track)
	if !ok {
		return
	}

	questions, err := s.generator.Generate(r.Context(), t)
	if err != nil {
		slog.Error("question generation failed", "track", t.ID, "error", err)
		var ue *quizgen.UserError
		switch {
		case errors.Is(err, quizgen.ErrNoCredential):
			respondError(w, http.StatusServiceUnavailable, "no_credential", userMessage(err))
		case errors.As(err, &ue):
			respondError(w, http.StatusBadGateway, "generation_failed", ue.Message)
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "Failed to generate questions")
		}
		return
	}

	respondJSON(w, http.StatusOK, quizResponse{
		SessionID: uuid.NewString(),
		Track:     t.ID,
		Questions: questions,
	})
}

func userMessage(err error) string {
	var ue *quizgen.UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}

// Pronunciation

type pronunciationRequest struct {
	Text string `json:"text"`
}

func (s *Server) handlePronunciation(w http.ResponseWriter, r *http.Request) {
	var req pronunciationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "text is required")
		return
	}

	buf, err := s.pronouncer.Fetch(r.Context(), req.Text)
	if err != nil {
		slog.Error("pronunciation failed", "error", err)
		switch {
		case errors.Is(err, pronounce.ErrNoCredential):
			respondError(w, http.StatusServiceUnavailable, "no_credential", "Pronunciation is not configured")
		case errors.Is(err, pronounce.ErrNoAudio):
			respondError(w, http.StatusBadGateway, "no_audio", "The speech service returned no audio")
		default:
			respondError(w, http.StatusBadGateway, "speech_failed", "Could not fetch pronunciation")
		}
		return
	}

	var wav bytes.Buffer
	if err := audio.EncodeWAV(&wav, buf); err != nil {
		slog.Error("failed to encode wav", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to encode audio")
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(wav.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(wav.Bytes()); err != nil {
		slog.Error("failed to write audio", "error", err)
	}
}

// Scoring

type estimateRequest struct {
	Track        string             `json:"track"`
	SessionID    string             `json:"sessionId"`
	Questions    []quizgen.Question `json:"questions"`
	Answers      []results.Answer   `json:"answers"`
	DurationSecs int                `json:"durationSecs"`

	// Record stores the result in the history when the server has a store.
	Record bool `json:"record"`
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	t, ok := lookupTrack(w, req.Track)
	if !ok {
		return
	}

	res := results.Estimate(req.Questions, req.Answers, t)

	if req.Record && s.results != nil && res.Total > 0 {
		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		data := res.Record(sessionID, time.Duration(req.DurationSecs)*time.Second)
		if err := s.results.AppendResult(r.Context(), data); err != nil {
			slog.Error("failed to record result", "session", sessionID, "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "Failed to record result")
			return
		}
	}

	respondJSON(w, http.StatusOK, res)
}

type resultEntry struct {
	ID         int       `json:"id"`
	SessionID  string    `json:"sessionId"`
	Track      string    `json:"track"`
	Score      int       `json:"score"`
	LevelLabel string    `json:"levelLabel"`
	Vocabulary string    `json:"vocabulary"`
	Correct    int       `json:"correct"`
	Total      int       `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid_request", "limit must be a positive integer")
			return
		}
		limit = n
	}

	recs, err := s.results.QueryResults(r.Context(), r.URL.Query().Get("track"), store.QueryOpts{Limit: limit})
	if err != nil {
		slog.Error("failed to query results", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to load results")
		return
	}

	out := make([]resultEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, resultEntry{
			ID:         rec.ID,
			SessionID:  rec.SessionID,
			Track:      rec.Track,
			Score:      rec.Score,
			LevelLabel: rec.LevelLabel,
			Vocabulary: rec.Vocabulary,
			Correct:    rec.Correct,
			Total:      rec.Total,
			Timestamp:  rec.Timestamp,
		})
	}
	respondJSON(w, http.StatusOK, out)
}
