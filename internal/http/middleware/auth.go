package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	scs "github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/workoutgen/internal/auth"
)

type contextKey string

const IdentityKey contextKey = "identity"

// Session keys written by the login handler
const (
	SessionUID           = "uid"
	SessionEmail         = "email"
	SessionEmailVerified = "email_verified"
)

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id *auth.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

// IdentityFrom returns the identity stored by Authenticate, if any
func IdentityFrom(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(*auth.Identity)
	return id, ok && id != nil && id.UID != ""
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// Authenticate resolves the caller from the session cookie, then from a
// bearer token. A request with neither passes through without an identity.
func Authenticate(v auth.Verifier, sess *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if sess != nil {
				if uid := sess.GetString(ctx, SessionUID); uid != "" {
					id := &auth.Identity{
						UID:           uid,
						Email:         sess.GetString(ctx, SessionEmail),
						EmailVerified: sess.GetBool(ctx, SessionEmailVerified),
					}
					next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, id)))
					return
				}
			}

			if tok := BearerToken(r); tok != "" && v != nil {
				id, err := v.Verify(ctx, tok)
				if err != nil {
					hlog.FromRequest(r).Debug().Err(err).Msg("bearer token rejected")
				} else {
					r = r.WithContext(WithIdentity(ctx, id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects requests that Authenticate left without an identity
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFrom(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
