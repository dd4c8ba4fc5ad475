// Package auth verifies end-user identity tokens
package auth

import (
	"context"
	"errors"
)

var (
	ErrNoToken      = errors.New("no identity token")
	ErrInvalidToken = errors.New("invalid or expired identity token")
)

// Identity is a verified end user
type Identity struct {
	UID           string `json:"uid"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// Verifier checks an identity token and returns who it belongs to.
// Failures wrap ErrInvalidToken.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
