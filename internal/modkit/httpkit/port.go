// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"

	"internhasha/internal/core/posting"
	perrs "internhasha/internal/platform/errors"
)

// TokenReader is the slice of the session store the port needs
type TokenReader interface {
	Token() (string, error)
}

// UserReader returns the cached signed in user, nil when unknown
type UserReader interface {
	CachedUser() (*posting.User, error)
}

// SessionPort implements middleware.AuthPort over the resident session.
// The gateway acts for a single local user, so the request itself carries no credentials.
type SessionPort struct {
	tokens TokenReader
	users  UserReader
}

// NewSessionPort builds a port from the session store. users may be nil
func NewSessionPort(tokens TokenReader, users UserReader) *SessionPort {
	return &SessionPort{tokens: tokens, users: users}
}

// Parse returns the cached user id, or "me" when a token is resident but no user is cached.
// Returns unauthorized when no token is stored
func (p *SessionPort) Parse(_ *http.Request) (string, error) {
	if p == nil || p.tokens == nil {
		return "", perrs.Unauthorizedf("login required")
	}
	tok, err := p.tokens.Token()
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", perrs.Unauthorizedf("login required")
	}
	if p.users != nil {
		if u, err := p.users.CachedUser(); err == nil && u != nil && u.ID != "" {
			return u.ID, nil
		}
	}
	return "me", nil
}
