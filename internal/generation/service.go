// Package generation turns a fitness prompt into a workout plan, falling back
// to a canned plan whenever the model is unavailable or its answer is unusable.
package generation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/briangreenhill/workoutgen/internal/llm"
	"github.com/briangreenhill/workoutgen/internal/plans"
	"github.com/briangreenhill/workoutgen/internal/quality"
)

// Source tells which path produced an outcome's text
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// FallbackModel is reported as the model for fallback outcomes
const FallbackModel = "fallback"

const (
	NoteNoCredential = "API key not configured - using fallback workout"
	NoteUnavailable  = "AI service temporarily unavailable - using fallback workout"
	NoteLowQuality   = "AI response failed quality checks - using fallback workout"
)

// ErrInvalidPrompt is returned for an empty or whitespace-only prompt
var ErrInvalidPrompt = errors.New("valid prompt is required")

// Invoker produces completion text for a prompt
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Request is one generation request
type Request struct {
	Prompt    string
	Requester string // verified user id, empty when anonymous
}

// Outcome is the result handed back to transports. Text is never empty.
type Outcome struct {
	Text      string
	Source    Source
	ModelUsed string
	Note      string // set for fallback outcomes
}

// Service runs the generation pipeline. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	invoker Invoker
	logger  zerolog.Logger
}

// NewService creates a generation service
func NewService(invoker Invoker, logger zerolog.Logger) *Service {
	return &Service{
		invoker: invoker,
		logger:  logger.With().Str("component", "generation").Logger(),
	}
}

// Generate validates the request, asks the model for a plan and checks it.
// The only error is ErrInvalidPrompt; every other failure yields a fallback outcome.
func (s *Service) Generate(ctx context.Context, req Request) (Outcome, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Outcome{}, ErrInvalidPrompt
	}

	requester := req.Requester
	if requester == "" {
		requester = "unauthenticated"
	}
	log := s.logger.With().Str("user", requester).Int("prompt_length", len(req.Prompt)).Logger()
	start := time.Now()

	text, err := s.invoker.Invoke(ctx, req.Prompt)
	if err != nil {
		reason := llm.ReasonOf(err)
		if reason == "" {
			reason = llm.ReasonNetwork
		}
		note := NoteUnavailable
		if reason == llm.ReasonNoCredential {
			note = NoteNoCredential
			log.Info().Msg("API key not found, using fallback workout")
		} else {
			log.Warn().Err(err).Str("reason", string(reason)).Msg("model invocation failed, using fallback workout")
		}
		return s.fallback(req.Prompt, string(reason), note, start), nil
	}

	if err := quality.Check(text, req.Prompt); err != nil {
		reason := quality.Reason(err)
		log.Info().Str("reason", reason).Int("length", len(text)).Msg("low quality response detected, using fallback workout")
		return s.fallback(req.Prompt, reason, NoteLowQuality, start), nil
	}

	observe(SourceModel, "accepted", start)
	log.Info().Dur("duration", time.Since(start)).Msg("workout generated successfully")
	return Outcome{
		Text:      text,
		Source:    SourceModel,
		ModelUsed: s.invoker.Model(),
	}, nil
}

func (s *Service) fallback(prompt, reason, note string, start time.Time) Outcome {
	observe(SourceFallback, reason, start)
	fallbackCategory.WithLabelValues(plans.Categorize(prompt).String()).Inc()
	return Outcome{
		Text:      plans.Select(prompt),
		Source:    SourceFallback,
		ModelUsed: FallbackModel,
		Note:      note,
	}
}
