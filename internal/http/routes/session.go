package routes

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"

	appmw "github.com/briangreenhill/workoutgen/internal/http/middleware"
)

type sessionRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// handleSessionLogin exchanges a verified ID token for a cookie session
func (s *Server) handleSessionLogin(w http.ResponseWriter, r *http.Request) {
	if s.Sess == nil || s.Verifier == nil {
		writeError(w, r, http.StatusServiceUnavailable, "sessions are not configured")
		return
	}

	var body sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || s.validate.Struct(body) != nil {
		writeError(w, r, http.StatusBadRequest, "idToken is required")
		return
	}

	id, err := s.Verifier.Verify(r.Context(), body.IDToken)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("session login rejected")
		writeError(w, r, http.StatusUnauthorized, "Invalid auth token")
		return
	}

	ctx := r.Context()
	if err := s.Sess.RenewToken(ctx); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("renew session token")
		writeError(w, r, http.StatusInternalServerError, "could not start session")
		return
	}
	s.Sess.Put(ctx, appmw.SessionUID, id.UID)
	s.Sess.Put(ctx, appmw.SessionEmail, id.Email)
	s.Sess.Put(ctx, appmw.SessionEmailVerified, id.EmailVerified)

	hlog.FromRequest(r).Info().Str("user", id.UID).Msg("session started")
	writeJSON(w, r, http.StatusOK, id)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if s.Sess != nil {
		if err := s.Sess.Destroy(r.Context()); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("destroy session")
			writeError(w, r, http.StatusInternalServerError, "could not end session")
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
