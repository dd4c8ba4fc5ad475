package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/workoutgen/internal/db"
	appmw "github.com/briangreenhill/workoutgen/internal/http/middleware"
)

const workoutListLimit = 100

type saveWorkoutRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Content string `json:"content" validate:"required"`
}

func (s *Server) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Store == nil {
			writeError(w, r, http.StatusServiceUnavailable, "saved workouts are not available")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSaveWorkout(w http.ResponseWriter, r *http.Request) {
	id, _ := appmw.IdentityFrom(r.Context())
	if !id.EmailVerified {
		writeError(w, r, http.StatusForbidden, "Please verify your email before saving workouts")
		return
	}

	var body saveWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := s.validate.Struct(body); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	saved, err := s.Store.CreateSavedWorkout(r.Context(), db.CreateSavedWorkoutParams{
		OwnerID:    id.UID,
		OwnerEmail: id.Email,
		Name:       body.Name,
		Content:    body.Content,
	})
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("user", id.UID).Msg("save workout failed")
		writeError(w, r, http.StatusInternalServerError, "could not save workout")
		return
	}
	writeJSON(w, r, http.StatusCreated, saved)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	id, _ := appmw.IdentityFrom(r.Context())
	items, err := s.Store.ListSavedWorkoutsByOwner(r.Context(), id.UID, workoutListLimit)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("user", id.UID).Msg("list workouts failed")
		writeError(w, r, http.StatusInternalServerError, "could not load workouts")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"workouts": items})
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, _ := appmw.IdentityFrom(r.Context())
	wid, err := uuid.Parse(chi.URLParam(r, "workoutID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid workout ID")
		return
	}

	saved, err := s.Store.GetSavedWorkout(r.Context(), wid, id.UID)
	switch {
	case errors.Is(err, db.ErrWorkoutNotFound):
		writeError(w, r, http.StatusNotFound, "workout not found")
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("workout", wid.String()).Msg("get workout failed")
		writeError(w, r, http.StatusInternalServerError, "could not load workout")
	default:
		writeJSON(w, r, http.StatusOK, saved)
	}
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, _ := appmw.IdentityFrom(r.Context())
	wid, err := uuid.Parse(chi.URLParam(r, "workoutID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid workout ID")
		return
	}

	err = s.Store.DeleteSavedWorkout(r.Context(), wid, id.UID)
	switch {
	case errors.Is(err, db.ErrWorkoutNotFound):
		writeError(w, r, http.StatusNotFound, "workout not found")
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("workout", wid.String()).Msg("delete workout failed")
		writeError(w, r, http.StatusInternalServerError, "could not delete workout")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	}
	return field + " is invalid"
}
