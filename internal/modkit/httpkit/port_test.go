package httpkit

import (
	"errors"
	"net/http"
	"testing"

	"internhasha/internal/core/posting"
	perrs "internhasha/internal/platform/errors"
)

type stubTokens struct {
	tok string
	err error
}

func (s stubTokens) Token() (string, error) { return s.tok, s.err }

type stubUsers struct{ u *posting.User }

func (s stubUsers) CachedUser() (*posting.User, error) { return s.u, nil }

func parse(t *testing.T, p *SessionPort) (string, error) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	return p.Parse(req)
}

func TestSessionPort_NoToken_Unauthorized(t *testing.T) {
	t.Parallel()

	for _, p := range []*SessionPort{
		nil,
		NewSessionPort(nil, nil),
		NewSessionPort(stubTokens{}, nil),
	} {
		uid, err := parse(t, p)
		if uid != "" || !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
			t.Fatalf("expected unauthorized, got %q %v", uid, err)
		}
	}
}

func TestSessionPort_StoreErrorPassesThrough(t *testing.T) {
	t.Parallel()

	boom := perrs.New(perrs.ErrorCodeUnavailable, "keyring locked")
	_, err := parse(t, NewSessionPort(stubTokens{err: boom}, nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestSessionPort_UsesCachedUserID(t *testing.T) {
	t.Parallel()

	uid, err := parse(t, NewSessionPort(stubTokens{tok: "t"}, stubUsers{u: &posting.User{ID: "42"}}))
	if err != nil || uid != "42" {
		t.Fatalf("got %q %v", uid, err)
	}

	uid, err = parse(t, NewSessionPort(stubTokens{tok: "t"}, stubUsers{}))
	if err != nil || uid != "me" {
		t.Fatalf("expected fallback id, got %q %v", uid, err)
	}
}
