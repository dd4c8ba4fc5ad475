package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briangreenhill/workoutgen/internal/prompt"
)

// mockProvider is a minimal OpenAI-compatible chat endpoint
type mockProvider struct {
	server  *httptest.Server
	calls   atomic.Int32
	lastReq atomic.Value // map[string]any
}

func newMockProvider(t *testing.T, handler http.HandlerFunc) *mockProvider {
	t.Helper()
	m := &mockProvider{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		m.calls.Add(1)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		body["authorization"] = r.Header.Get("Authorization")
		m.lastReq.Store(body)
		handler(w, r)
	})
	m.server = httptest.NewServer(mux)
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockProvider) params(apiKey string) Params {
	return Params{
		APIKey:      apiKey,
		BaseURL:     m.server.URL + "/v1",
		Model:       DefaultModel,
		MaxTokens:   2000,
		Temperature: 0.7,
		TopP:        0.9,
		Timeout:     2 * time.Second,
	}
}

func completion(text string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "cmpl-1",
		"object":  "chat.completion",
		"model":   DefaultModel,
		"choices": []map[string]any{{"index": 0, "message": map[string]string{"role": "assistant", "content": text}, "finish_reason": "stop"}},
		"usage":   map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	})
	return string(b)
}

func TestInvokeSuccess(t *testing.T) {
	m := newMockProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completion("Warm-up, main work, cool-down.")))
	})
	c := New(m.params("secret"), prompt.Default(), zerolog.Nop())

	text, err := c.Invoke(context.Background(), "leg day")
	require.NoError(t, err)
	assert.Equal(t, "Warm-up, main work, cool-down.", text)

	req := m.lastReq.Load().(map[string]any)
	assert.Equal(t, "Bearer secret", req["authorization"])
	assert.Equal(t, DefaultModel, req["model"])
	assert.EqualValues(t, 2000, req["max_tokens"])
	assert.InDelta(t, 0.7, req["temperature"], 0.001)
	assert.InDelta(t, 0.9, req["top_p"], 0.001)

	msgs := req["messages"].([]any)
	require.Len(t, msgs, 2)
	system := msgs[0].(map[string]any)
	user := msgs[1].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, prompt.DefaultSystem, system["content"])
	assert.Equal(t, "user", user["role"])
	assert.Contains(t, user["content"], `"leg day"`)
}

func TestInvokeNoCredential(t *testing.T) {
	m := newMockProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called without a credential")
	})
	c := New(m.params(""), prompt.Default(), zerolog.Nop())

	_, err := c.Invoke(context.Background(), "anything")
	require.ErrorIs(t, err, ErrNoCredential)
	assert.Equal(t, ReasonNoCredential, ReasonOf(err))
	assert.EqualValues(t, 0, m.calls.Load())
}

func TestInvokeFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		reason  Reason
		status  int
	}{
		{
			name: "provider error with body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
			},
			reason: ReasonProvider,
			status: http.StatusTooManyRequests,
		},
		{
			name: "provider error without json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("<html>bad gateway</html>"))
			},
			reason: ReasonProvider,
			status: http.StatusBadGateway,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("{not json"))
			},
			reason: ReasonMalformed,
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
			},
			reason: ReasonMalformed,
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(completion("   ")))
			},
			reason: ReasonMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockProvider(t, tt.handler)
			c := New(m.params("secret"), prompt.Default(), zerolog.Nop())

			_, err := c.Invoke(context.Background(), "leg day")
			require.Error(t, err)

			var ie *InvocationError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.reason, ie.Reason)
			assert.Equal(t, tt.status, ie.Status)
			assert.EqualValues(t, 1, m.calls.Load(), "no retries expected")
		})
	}
}

func TestInvokeTimeout(t *testing.T) {
	m := newMockProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	})
	p := m.params("secret")
	p.Timeout = 100 * time.Millisecond
	c := New(p, prompt.Default(), zerolog.Nop())

	_, err := c.Invoke(context.Background(), "leg day")
	assert.Equal(t, ReasonTimeout, ReasonOf(err))
}

func TestInvokeIgnoresCallerCancellation(t *testing.T) {
	m := newMockProvider(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(completion("A complete plan with warm-up and cool-down.")))
	})
	c := New(m.params("secret"), prompt.Default(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text, err := c.Invoke(ctx, "leg day")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "A complete plan"))
}

func TestInvokeNetworkError(t *testing.T) {
	m := newMockProvider(t, func(w http.ResponseWriter, r *http.Request) {})
	p := m.params("secret")
	m.server.Close()

	c := New(p, prompt.Default(), zerolog.Nop())
	_, err := c.Invoke(context.Background(), "leg day")
	assert.Equal(t, ReasonNetwork, ReasonOf(err))
}

func TestProbe(t *testing.T) {
	m := newMockProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completion("I'm well, thanks!")))
	})
	c := New(m.params("secret"), prompt.Default(), zerolog.Nop())

	text, err := c.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "I'm well, thanks!", text)

	req := m.lastReq.Load().(map[string]any)
	assert.EqualValues(t, 50, req["max_tokens"])
	msgs := req["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello, how are you?", msgs[0].(map[string]any)["content"])
}

func TestNewDefaults(t *testing.T) {
	c := New(Params{APIKey: "k"}, prompt.Default(), zerolog.Nop())
	assert.Equal(t, DefaultModel, c.Model())
	assert.True(t, c.HasCredential())
	assert.False(t, New(Params{}, prompt.Default(), zerolog.Nop()).HasCredential())
}
