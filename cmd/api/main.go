// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	scs "github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/workoutgen/internal/auth"
	"github.com/briangreenhill/workoutgen/internal/config"
	"github.com/briangreenhill/workoutgen/internal/db"
	"github.com/briangreenhill/workoutgen/internal/generation"
	"github.com/briangreenhill/workoutgen/internal/http/routes"
	"github.com/briangreenhill/workoutgen/internal/llm"
	"github.com/briangreenhill/workoutgen/internal/prompt"
)

func main() {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	} else {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown LOG_LEVEL, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Model
	tmpl := prompt.LoadOrDefault(cfg.LLM.PromptPath, logger)
	client := llm.New(cfg.Invocation(), tmpl, logger)
	if !cfg.HasLLM() {
		logger.Warn().Msg("TOGETHER_API_KEY not set, every request will use fallback workouts")
	}
	gen := generation.NewService(client, logger)

	// Identity
	var verifier auth.Verifier
	switch {
	case cfg.HasFirebase():
		fv, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("firebase init")
		}
		verifier = fv
	case cfg.Session.Secret != "":
		logger.Warn().Msg("FIREBASE_PROJECT_ID not set, verifying local HS256 tokens")
		verifier = auth.LocalTokens{Secret: []byte(cfg.Session.Secret)}
	default:
		logger.Warn().Msg("no identity verifier configured, authenticated routes will reject every caller")
	}

	// DB
	var store routes.WorkoutStore
	if cfg.HasDatabase() {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			logger.Fatal().Err(err).Msg("db migrate")
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("db connect")
		}
		defer pool.Close()
		store = db.New(pool)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, saved workouts are disabled")
	}

	// Sessions
	sess := scs.New()
	sess.Lifetime = cfg.Session.Lifetime
	sess.Cookie.HttpOnly = true
	sess.Cookie.SameSite = http.SameSiteLaxMode
	sess.Cookie.Secure = cfg.Session.CookieSecure

	// Router / server
	s := routes.New(routes.ServerOptions{
		Sess:      sess,
		Generator: gen,
		Prober:    client,
		Verifier:  verifier,
		Store:     store,
		Cfg:       cfg,
	})
	h := hlog.NewHandler(logger)(s.Router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           sess.LoadAndSave(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("port", cfg.Port).Str("model", client.Model()).Msg("starting workout generator")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server error")
	}
}
