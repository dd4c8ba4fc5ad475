package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOGETHER_API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected Port '8080', got '%s'", cfg.Port)
	}
	if cfg.LLM.Model != "meta-llama/Llama-3-70b-chat-hf" {
		t.Errorf("Expected default model, got '%s'", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 2000 {
		t.Errorf("Expected MaxTokens 2000, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("Expected Timeout 30s, got %v", cfg.LLM.Timeout)
	}
	if cfg.Session.Lifetime != 12*time.Hour {
		t.Errorf("Expected session lifetime 12h, got %v", cfg.Session.Lifetime)
	}
	if cfg.HasLLM() {
		t.Error("Should not have LLM configured")
	}
	if cfg.HasDatabase() {
		t.Error("Should not have database configured")
	}
	if cfg.HasFirebase() {
		t.Error("Should not have Firebase configured")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TOGETHER_API_KEY", "test_key")
	t.Setenv("LLM_TEMPERATURE", "0.5")
	t.Setenv("LLM_TOP_P", "1")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("FIREBASE_PROJECT_ID", "demo-project")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port '9000', got '%s'", cfg.Port)
	}
	if !cfg.HasLLM() {
		t.Error("Should have LLM configured")
	}
	if !cfg.HasFirebase() {
		t.Error("Should have Firebase configured")
	}

	p := cfg.Invocation()
	if p.APIKey != "test_key" || p.Temperature != 0.5 || p.TopP != 1 || p.Timeout != 5*time.Second {
		t.Errorf("Unexpected invocation params: %+v", p)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LLM_TEMPERATURE", "3"},
		{"LLM_TEMPERATURE", "warm"},
		{"LLM_TOP_P", "0"},
		{"LLM_MAX_TOKENS", "-1"},
		{"LLM_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "8080", LLM: LLMConfig{MaxTokens: 100, Temperature: 0.7, TopP: 0.9, Timeout: time.Second}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Should not error with valid config: %v", err)
	}

	cfg.Port = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty port")
	}
}
