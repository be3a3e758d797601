package client

import (
	"errors"
	"fmt"
	"time"

	"reachout/middleware"

	"github.com/golang-jwt/jwt/v4"
)

// Session is the client-side view of a logged-in administrator.
type Session struct {
	Token     string
	Principal middleware.Principal
	ExpiresAt time.Time
}

// Valid reports whether the session still carries an unexpired token at the given time.
func (s *Session) Valid(at time.Time) bool {
	return s != nil && s.Token != "" && at.Before(s.ExpiresAt)
}

// SessionFromToken decodes the claims of a token without checking its signature.
// The server stays the authority; this only lets a client notice expiry early.
func SessionFromToken(token string) (*Session, error) {
	claims := &middleware.Claims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("decode token: missing exp claim")
	}

	return &Session{
		Token: token,
		Principal: middleware.Principal{
			ID:        claims.ID,
			Email:     claims.Email,
			Role:      claims.Role,
			ExpiresAt: claims.ExpiresAt.Time,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
