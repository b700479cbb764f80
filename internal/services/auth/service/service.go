// Package service is the auth state provider: it owns the current user and the
// loading flag, and drives login, signup, logout and mail verification against
// the REST API while keeping the session store in step.
package service

import (
	"context"
	"sync"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/core/posting"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
	pstrings "internhasha/internal/platform/strings"
	"internhasha/internal/platform/validate"
	"internhasha/internal/services/auth/domain"
	"internhasha/internal/session"
)

// Service is the auth provider contract
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	api    domain.API
	store  session.Store
	cache  session.UserCache
	signup []SignupStrategy

	mu      sync.RWMutex
	user    *posting.User
	loading bool
}

// Option customizes Svc
type Option func(*Svc)

// WithUserCache persists the user projection between runs
func WithUserCache(c session.UserCache) Option { return func(s *Svc) { s.cache = c } }

// WithSignupStrategies replaces the signup strategy list
func WithSignupStrategies(st ...SignupStrategy) Option {
	return func(s *Svc) { s.signup = st }
}

// New creates the provider. It starts in the loading state with the cached
// user, if any, until Start runs.
func New(api domain.API, store session.Store, opts ...Option) *Svc {
	if api == nil {
		panic("auth.Service requires a non nil API")
	}
	if store == nil {
		panic("auth.Service requires a non nil session store")
	}
	s := &Svc{api: api, store: store, signup: DefaultSignupStrategies(), loading: true}
	for _, o := range opts {
		o(s)
	}
	if s.cache != nil {
		u, err := s.cache.CachedUser()
		if err != nil {
			logger.Named("auth").Warn().Err(err).Msg("read cached user")
		}
		s.user = u
	}
	return s
}

// State returns a snapshot of user and loading
func (s *Svc) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.State{User: s.user, Loading: s.loading}
}

// Start validates a stored session with the server; without a token it just
// stops loading and leaves the cached user as is.
func (s *Svc) Start(ctx context.Context) domain.State {
	tok, err := s.store.Token()
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("read session token")
	}
	if tok != "" {
		_, _ = s.Refresh(ctx)
		return s.State()
	}
	s.setLoading(false)
	return s.State()
}

// Refresh re-reads the user from the server. Any failure ends logged out:
// user nil and the cache cleared. The error is still returned for callers
// that want to show it.
func (s *Svc) Refresh(ctx context.Context) (*posting.User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	me, err := s.api.Me(ctx)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Msg("refresh failed, clearing user")
		s.setUser(nil)
		return nil, err
	}
	u := ToUser(me)
	s.setUser(u)
	return u, nil
}

// Login authenticates, stores the token if the server sent one, then refreshes.
// A refresh failure after a successful login is logged, not returned.
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (*posting.User, error) {
	if err := validate.Check(in); err != nil {
		return nil, err
	}
	tr, err := s.api.Login(ctx, internhasha.Credentials{Email: in.Email, Password: in.Password})
	if err != nil {
		return nil, err
	}
	if err := s.keep(tr.Token); err != nil {
		return nil, err
	}
	return s.refreshQuietly(ctx), nil
}

// Signup runs the strategy list, stores the token if present, then refreshes
func (s *Svc) Signup(ctx context.Context, in domain.SignupInput) (*posting.User, error) {
	if err := validate.Check(in); err != nil {
		return nil, err
	}
	tr, err := s.runSignup(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.keep(tr.Token); err != nil {
		return nil, err
	}
	return s.refreshQuietly(ctx), nil
}

// Logout always ends logged out; the server call is best effort
func (s *Svc) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	}
	s.setUser(nil)
	if err := s.store.Clear(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "clear session")
	}
	return nil
}

// SendCode runs the duplicate check (best effort) and mails a verification code
func (s *Svc) SendCode(ctx context.Context, in domain.MailInput) error {
	if err := validate.Check(in); err != nil {
		return err
	}
	if err := s.api.MailCheck(ctx, in.SnuMail); err != nil {
		if internhasha.IsAborted(err) {
			return err
		}
		logger.C(ctx).Debug().Err(err).Msg("mail duplicate check failed, continuing")
	}
	return s.api.MailVerify(ctx, in.SnuMail)
}

// CheckCode exchanges a mailed code for the signup success code
func (s *Svc) CheckCode(ctx context.Context, in domain.MailCodeInput) (string, error) {
	if err := validate.Check(in); err != nil {
		return "", err
	}
	sc, err := s.api.MailValidate(ctx, in.SnuMail, in.Code)
	if err != nil {
		return "", err
	}
	if sc.SuccessCode == "" {
		return "", perr.New(perr.ErrorCodeUpstream, "mail validation returned no success code")
	}
	return sc.SuccessCode, nil
}

func (s *Svc) refreshQuietly(ctx context.Context) *posting.User {
	u, err := s.Refresh(ctx)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("refresh after authentication failed")
	}
	return u
}

func (s *Svc) keep(token string) error {
	if token == "" {
		return nil
	}
	if err := s.store.SetToken(token); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "store session token")
	}
	return nil
}

func (s *Svc) setLoading(on bool) {
	s.mu.Lock()
	s.loading = on
	s.mu.Unlock()
}

func (s *Svc) setUser(u *posting.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheUser(u); err != nil {
		logger.Named("auth").Warn().Err(err).Msg("persist cached user")
	}
}

// ToUser projects the "me" response; the display name falls back through
// realName, name and email to a fixed placeholder.
func ToUser(me internhasha.Me) *posting.User {
	name := pstrings.FirstNonBlank(me.RealName, me.Name, me.Email, posting.DefaultDisplayName)
	return &posting.User{ID: me.ID, Email: me.Email, Name: name}
}
