package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	scs "github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/workoutgen/internal/auth"
	"github.com/briangreenhill/workoutgen/internal/config"
	"github.com/briangreenhill/workoutgen/internal/db"
	"github.com/briangreenhill/workoutgen/internal/generation"
	appmw "github.com/briangreenhill/workoutgen/internal/http/middleware"
)

// Generator runs the workout generation pipeline
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (generation.Outcome, error)
}

// Prober sends a fixed smoke-test prompt to the configured model
type Prober interface {
	Probe(ctx context.Context) (string, error)
	Model() string
}

// WorkoutStore persists saved workouts. *db.Queries implements it.
type WorkoutStore interface {
	CreateSavedWorkout(ctx context.Context, arg db.CreateSavedWorkoutParams) (db.SavedWorkout, error)
	ListSavedWorkoutsByOwner(ctx context.Context, ownerID string, limit int32) ([]db.SavedWorkout, error)
	GetSavedWorkout(ctx context.Context, id uuid.UUID, ownerID string) (db.SavedWorkout, error)
	DeleteSavedWorkout(ctx context.Context, id uuid.UUID, ownerID string) error
}

type Server struct {
	Router        *chi.Mux
	Sess          *scs.SessionManager
	Gen           Generator
	Prober        Prober
	Verifier      auth.Verifier
	Store         WorkoutStore // nil when no database is configured
	AllowedOrigin string
	validate      *validator.Validate
}

type ServerOptions struct {
	Sess      *scs.SessionManager
	Generator Generator
	Prober    Prober
	Verifier  auth.Verifier
	Store     WorkoutStore
	Cfg       *config.Config
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(chimw.Recoverer)

	s := &Server{
		Router:        r,
		Sess:          opts.Sess,
		Gen:           opts.Generator,
		Prober:        opts.Prober,
		Verifier:      opts.Verifier,
		Store:         opts.Store,
		AllowedOrigin: opts.Cfg.AllowedOrigin,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("write health check response")
		}
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/test-models", s.handleTestModels)

	// plain HTTP transport, method handling is done by the handler itself
	r.With(appmw.CORS(s.AllowedOrigin)).HandleFunc("/generateWorkoutHTTP", s.handleGenerateHTTP)
	r.With(appmw.CORS(s.AllowedOrigin)).HandleFunc("/generate", s.handleGenerateHTTP)

	r.Group(func(pr chi.Router) {
		pr.Use(appmw.Authenticate(s.Verifier, s.Sess))

		pr.Post("/generateWorkout", s.handleGenerateCallable)
		pr.Post("/auth/session", s.handleSessionLogin)
		pr.Post("/auth/logout", s.handleLogout)

		pr.Group(func(ar chi.Router) {
			ar.Use(appmw.RequireAuth)
			ar.Use(s.requireStore)
			ar.Post("/workouts", s.handleSaveWorkout)
			ar.Get("/workouts", s.handleListWorkouts)
			ar.Get("/workouts/{workoutID}", s.handleGetWorkout)
			ar.Delete("/workouts/{workoutID}", s.handleDeleteWorkout)
		})
	})

	return s
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("request")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
