package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/workoutgen/internal/generation"
	appmw "github.com/briangreenhill/workoutgen/internal/http/middleware"
)

const (
	msgInvalidPrompt   = "Valid prompt is required"
	msgUnauthenticated = "User must be authenticated to generate workouts"
)

// generateResponse is the wire shape shared by both transports
type generateResponse struct {
	GeneratedText string `json:"generated_text"`
	ModelUsed     string `json:"model_used"`
	Note          string `json:"note,omitempty"`
}

func toResponse(o generation.Outcome) generateResponse {
	return generateResponse{GeneratedText: o.Text, ModelUsed: o.ModelUsed, Note: o.Note}
}

type generateHTTPRequest struct {
	Prompt    string `json:"prompt"`
	AuthToken string `json:"authToken"`
}

// handleGenerateHTTP serves the plain HTTP transport. The token is optional,
// but a supplied token must verify.
func (s *Server) handleGenerateHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var body generateHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("decode generate request")
		writeError(w, r, http.StatusBadRequest, msgInvalidPrompt)
		return
	}
	if !validPrompt(body.Prompt) {
		writeError(w, r, http.StatusBadRequest, msgInvalidPrompt)
		return
	}

	token := body.AuthToken
	if token == "" {
		token = appmw.BearerToken(r)
	}
	var requester string
	if token != "" {
		if s.Verifier == nil {
			writeError(w, r, http.StatusUnauthorized, "Invalid auth token")
			return
		}
		id, err := s.Verifier.Verify(r.Context(), token)
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("auth token rejected")
			writeError(w, r, http.StatusUnauthorized, "Invalid auth token")
			return
		}
		requester = id.UID
	}

	out, err := s.Gen.Generate(r.Context(), generation.Request{Prompt: body.Prompt, Requester: requester})
	if err != nil {
		writeGenerateError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toResponse(out))
}

type callableRequest struct {
	Data struct {
		Prompt string `json:"prompt"`
	} `json:"data"`
}

type callableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeCallableError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, r, status, map[string]callableError{"error": {Status: code, Message: msg}})
}

// handleGenerateCallable serves the RPC-style transport. The caller must be
// signed in, through a session or a bearer token.
func (s *Server) handleGenerateCallable(w http.ResponseWriter, r *http.Request) {
	id, ok := appmw.IdentityFrom(r.Context())
	if !ok {
		writeCallableError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", msgUnauthenticated)
		return
	}

	var body callableRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !validPrompt(body.Data.Prompt) {
		writeCallableError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", msgInvalidPrompt)
		return
	}

	out, err := s.Gen.Generate(r.Context(), generation.Request{Prompt: body.Data.Prompt, Requester: id.UID})
	if errors.Is(err, generation.ErrInvalidPrompt) {
		writeCallableError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", msgInvalidPrompt)
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("generate workout")
		writeCallableError(w, r, http.StatusInternalServerError, "INTERNAL", "Failed to generate workout")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]generateResponse{"result": toResponse(out)})
}

func writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, generation.ErrInvalidPrompt) {
		writeError(w, r, http.StatusBadRequest, msgInvalidPrompt)
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("generate workout")
	writeError(w, r, http.StatusInternalServerError, "Failed to generate workout")
}

func validPrompt(p string) bool {
	return strings.TrimSpace(p) != ""
}

type probeResponse struct {
	Status   string `json:"status"`
	Model    string `json:"model"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// handleTestModels checks that the configured model answers. It always returns 200.
func (s *Server) handleTestModels(w http.ResponseWriter, r *http.Request) {
	if s.Prober == nil {
		writeJSON(w, r, http.StatusOK, probeResponse{Status: "error", Error: "model client not configured"})
		return
	}
	text, err := s.Prober.Probe(r.Context())
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("model probe failed")
		writeJSON(w, r, http.StatusOK, probeResponse{Status: "error", Model: s.Prober.Model(), Error: err.Error()})
		return
	}
	writeJSON(w, r, http.StatusOK, probeResponse{Status: "working", Model: s.Prober.Model(), Response: text})
}
