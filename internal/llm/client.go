// Package llm issues chat-completion requests to an OpenAI-compatible provider
package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/briangreenhill/workoutgen/internal/prompt"
)

const (
	DefaultBaseURL = "https://api.together.xyz/v1"
	DefaultModel   = "meta-llama/Llama-3-70b-chat-hf"

	probeMessage   = "Hello, how are you?"
	probeMaxTokens = 50
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workoutgen_llm_requests_total",
			Help: "Total number of chat-completion requests by outcome.",
		},
		[]string{"model", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workoutgen_llm_request_duration_seconds",
			Help:    "Duration of chat-completion requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
)

// Params is the process-wide invocation configuration. It is built once at
// startup and never changed.
type Params struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	TopP        float32
	Timeout     time.Duration
}

// Client invokes the model. It is safe for concurrent use.
type Client struct {
	api    *openai.Client
	params Params
	tmpl   prompt.Template
	logger zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for provider calls
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		cfg := openai.DefaultConfig(c.params.APIKey)
		cfg.BaseURL = c.params.BaseURL
		cfg.HTTPClient = h
		c.api = openai.NewClientWithConfig(cfg)
	}
}

// New builds a client for params using tmpl for the persona and user message
func New(params Params, tmpl prompt.Template, logger zerolog.Logger, opts ...Option) *Client {
	if params.BaseURL == "" {
		params.BaseURL = DefaultBaseURL
	}
	params.BaseURL = strings.TrimRight(params.BaseURL, "/")
	if params.Model == "" {
		params.Model = DefaultModel
	}
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}

	cfg := openai.DefaultConfig(params.APIKey)
	cfg.BaseURL = params.BaseURL
	cfg.HTTPClient = &http.Client{Timeout: params.Timeout}

	c := &Client{
		api:    openai.NewClientWithConfig(cfg),
		params: params,
		tmpl:   tmpl,
		logger: logger.With().Str("component", "llm").Str("model", params.Model).Logger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Model returns the provider model id
func (c *Client) Model() string {
	return c.params.Model
}

// HasCredential reports whether an API key is configured
func (c *Client) HasCredential() bool {
	return c.params.APIKey != ""
}

// Invoke sends one chat-completion request for the raw user prompt and
// returns the completion text. Any failure is an *InvocationError. The call
// is bounded by the configured timeout and is not cancelled by ctx.
func (c *Client) Invoke(ctx context.Context, userPrompt string) (string, error) {
	if !c.HasCredential() {
		return "", ErrNoCredential
	}

	userMsg, err := c.tmpl.UserMessage(userPrompt)
	if err != nil {
		return "", &InvocationError{Reason: ReasonMalformed, Message: "could not build user message", Err: err}
	}

	req := openai.ChatCompletionRequest{
		Model: c.params.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.tmpl.System},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
		MaxTokens:   c.params.MaxTokens,
		Temperature: c.params.Temperature,
		TopP:        c.params.TopP,
	}

	return c.complete(ctx, req, "generate")
}

// Probe sends a short greeting and returns the model's reply. It is used to
// check that the provider is reachable with the configured credential.
func (c *Client) Probe(ctx context.Context) (string, error) {
	if !c.HasCredential() {
		return "", ErrNoCredential
	}

	req := openai.ChatCompletionRequest{
		Model: c.params.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: probeMessage},
		},
		MaxTokens: probeMaxTokens,
	}

	return c.complete(ctx, req, "probe")
}

func (c *Client) complete(parent context.Context, req openai.ChatCompletionRequest, op string) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), c.params.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	duration := time.Since(start)
	requestDuration.WithLabelValues(c.params.Model).Observe(duration.Seconds())

	if err != nil {
		ie := classify(err)
		requestsTotal.WithLabelValues(c.params.Model, string(ie.Reason)).Inc()
		c.logger.Warn().Err(err).Str("op", op).Str("reason", string(ie.Reason)).
			Int("status", ie.Status).Dur("duration", duration).Msg("chat completion failed")
		return "", ie
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		requestsTotal.WithLabelValues(c.params.Model, string(ReasonMalformed)).Inc()
		c.logger.Warn().Str("op", op).Int("choices", len(resp.Choices)).Dur("duration", duration).
			Msg("chat completion returned no text")
		return "", &InvocationError{Reason: ReasonMalformed, Message: "response has no completion text"}
	}

	requestsTotal.WithLabelValues(c.params.Model, "success").Inc()
	text := resp.Choices[0].Message.Content
	c.logger.Info().Str("op", op).Dur("duration", duration).Int("length", len(text)).
		Int("prompt_tokens", resp.Usage.PromptTokens).Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("chat completion received")
	return text, nil
}
