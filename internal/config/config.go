// Package config handles application configuration from environment variables
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/briangreenhill/workoutgen/internal/llm"
)

// Config holds all application configuration
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"https://ai-workout-generator-40443.web.app"`
	DatabaseURL   string `env:"DATABASE_URL"`

	LLM      LLMConfig
	Firebase FirebaseConfig
	Session  SessionConfig
}

// LLMConfig holds model provider configuration
type LLMConfig struct {
	APIKey      string        `env:"TOGETHER_API_KEY"`
	BaseURL     string        `env:"LLM_BASE_URL" envDefault:"https://api.together.xyz/v1"`
	Model       string        `env:"LLM_MODEL" envDefault:"meta-llama/Llama-3-70b-chat-hf"`
	MaxTokens   int           `env:"LLM_MAX_TOKENS" envDefault:"2000"`
	Temperature float32       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	TopP        float32       `env:"LLM_TOP_P" envDefault:"0.9"`
	Timeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	PromptPath  string        `env:"PROMPT_PATH"`
}

// FirebaseConfig holds identity token verification settings
type FirebaseConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`
}

// SessionConfig holds cookie session and local token settings
type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	Lifetime     time.Duration `env:"SESSION_LIFETIME" envDefault:"12h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate range-checks the model sampling configuration
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %v", c.LLM.Temperature)
	}
	if c.LLM.TopP <= 0 || c.LLM.TopP > 1 {
		return fmt.Errorf("LLM_TOP_P must be in (0, 1], got %v", c.LLM.TopP)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %v", c.LLM.Timeout)
	}
	return nil
}

// HasLLM returns true if a model credential is configured
func (c *Config) HasLLM() bool {
	return c.LLM.APIKey != ""
}

// HasFirebase returns true if Firebase token verification is configured
func (c *Config) HasFirebase() bool {
	return c.Firebase.ProjectID != ""
}

// HasDatabase returns true if saved workouts can be persisted
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// Invocation returns the immutable model invocation parameters
func (c *Config) Invocation() llm.Params {
	return llm.Params{
		APIKey:      c.LLM.APIKey,
		BaseURL:     c.LLM.BaseURL,
		Model:       c.LLM.Model,
		MaxTokens:   c.LLM.MaxTokens,
		Temperature: c.LLM.Temperature,
		TopP:        c.LLM.TopP,
		Timeout:     c.LLM.Timeout,
	}
}
