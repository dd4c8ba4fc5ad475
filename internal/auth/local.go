package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const localIssuer = "workoutgen-local"

// LocalTokens issues and verifies HS256 identity tokens. It stands in for
// Firebase in development and tests.
type LocalTokens struct {
	Secret []byte
}

type localClaims struct {
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// Sign returns a token for id that expires after ttl
func (l LocalTokens) Sign(id Identity, ttl time.Duration) (string, error) {
	if len(l.Secret) == 0 {
		return "", errors.New("local token secret is empty")
	}
	now := time.Now()
	claims := localClaims{
		Email:         id.Email,
		EmailVerified: id.EmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			Issuer:    localIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(l.Secret)
}

// Verify implements Verifier
func (l LocalTokens) Verify(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims := &localClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return l.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(localIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &Identity{UID: claims.Subject, Email: claims.Email, EmailVerified: claims.EmailVerified}, nil
}
