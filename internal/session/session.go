// Package session keeps the single bearer token (and a cached user projection)
// behind a small key/value backend: memory, a locked file, or the OS keyring.
package session

import (
	"encoding/json"
	"strings"

	"internhasha/internal/core/posting"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
)

// Storage keys, shared by every backend
const (
	TokenKey = "auth_token_v1"
	UserKey  = "auth_cached_user_v1"
)

// KV is the persistence seam. Get returns "" with a nil error for missing keys.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Name() string
}

// TokenSource is what the HTTP client reads on every request
type TokenSource interface {
	Token() (string, error)
}

// Store is the token store used by the auth flows
type Store interface {
	TokenSource
	SetToken(token string) error
	Clear() error
}

// UserCache persists the last "me" projection between runs
type UserCache interface {
	CachedUser() (*posting.User, error)
	CacheUser(u *posting.User) error
}

// Session implements Store and UserCache over a KV backend.
// At most one token is resident; an empty token means logged out.
type Session struct {
	kv  KV
	log logger.Logger
}

// New wraps a backend
func New(kv KV) *Session {
	return &Session{kv: kv, log: *logger.Named("session")}
}

// Backend names the underlying KV
func (s *Session) Backend() string { return s.kv.Name() }

// Token returns the resident token or ""
func (s *Session) Token() (string, error) {
	tok, err := s.kv.Get(TokenKey)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "read session token")
	}
	return strings.TrimSpace(tok), nil
}

// SetToken replaces the resident token; "" deletes it
func (s *Session) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return s.del(TokenKey)
	}
	if err := s.kv.Set(TokenKey, token); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "write session token")
	}
	s.log.Debug().Str("backend", s.kv.Name()).Msg("session token stored")
	return nil
}

// Clear drops the token and the cached user
func (s *Session) Clear() error {
	if err := s.del(TokenKey); err != nil {
		return err
	}
	return s.del(UserKey)
}

// CachedUser returns the cached projection, nil when absent or unreadable
func (s *Session) CachedUser() (*posting.User, error) {
	raw, err := s.kv.Get(UserKey)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read cached user")
	}
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var u posting.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn().Err(err).Msg("cached user unreadable, ignoring")
		return nil, nil
	}
	return &u, nil
}

// CacheUser stores u; nil removes the entry
func (s *Session) CacheUser(u *posting.User) error {
	if u == nil {
		return s.del(UserKey)
	}
	b, err := json.Marshal(u)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode cached user")
	}
	if err := s.kv.Set(UserKey, string(b)); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "write cached user")
	}
	return nil
}

func (s *Session) del(key string) error {
	if err := s.kv.Delete(key); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "delete %s", key)
	}
	return nil
}
