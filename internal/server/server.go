// Package server exposes quiz generation, pronunciation and scoring over a
// small JSON API for browser front-ends.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/pronounce"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/store"
)

// maxBodyBytes bounds request bodies. A full quiz with answers fits easily.
const maxBodyBytes = 1 << 20

// Server is the HTTP API server.
type Server struct {
	config     config.ServerConfig
	router     *chi.Mux
	generator  quizgen.Generator
	pronouncer *pronounce.Client
	results    store.ResultRepo
}

// New creates a Server. A nil results repo disables result recording and
// the history endpoint.
func New(cfg config.ServerConfig, gen quizgen.Generator, pr *pronounce.Client, results store.ResultRepo) *Server {
	s := &Server{
		config:     cfg,
		generator:  gen,
		pronouncer: pr,
		results:    results,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))

	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tracks", s.handleListTracks)
		r.Post("/quiz", s.handleGenerateQuiz)
		r.Post("/pronunciation", s.handlePronunciation)
		r.Post("/estimate", s.handleEstimate)
		if s.results != nil {
			r.Get("/results", s.handleListResults)
		}
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
