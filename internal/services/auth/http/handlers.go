// Package http provides http transport for the auth flows
package http

import (
	stdhttp "net/http"
	"time"

	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/services/auth/domain"
	"internhasha/internal/session"
)

// Deps are the handler dependencies. Session may be nil, then /session reports 503
type Deps struct {
	Svc     domain.ServicePort
	Session *session.Session
	Now     func() time.Time
}

// MailCodeOutput carries the success code used at signup
type MailCodeOutput struct {
	SuccessCode string `json:"successCode" example:"8a1c..."`
}

// Register mounts the auth routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
	httpkit.PostJSON[domain.SignupInput](r, "/signup", h.signup)
	httpkit.Post(r, "/logout", h.logout)
	httpkit.Get(r, "/me", h.me)
	httpkit.Post(r, "/refresh", h.refresh)
	httpkit.Get(r, "/session", h.session)
	httpkit.PostJSON[domain.MailInput](r, "/mail/send", h.sendCode)
	httpkit.PostJSON[domain.MailCodeInput](r, "/mail/check", h.checkCode)
}

type handlers struct{ deps Deps }

// swagger:route POST /auth/login Auth login
// @Summary Log in and refresh the current user
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.State "ok"
// @Failure 401 {object} httpkit.Envelope "rejected"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	if _, err := h.deps.Svc.Login(r.Context(), in); err != nil {
		return nil, err
	}
	return h.deps.Svc.State(), nil
}

// swagger:route POST /auth/signup Auth signup
// @Summary Create an applicant account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body domain.SignupInput true "Signup"
// @Success 201 {object} domain.State "created"
// @Router /auth/signup [post]
func (h *handlers) signup(r *stdhttp.Request, in domain.SignupInput) (any, error) {
	if _, err := h.deps.Svc.Signup(r.Context(), in); err != nil {
		return nil, err
	}
	return httpkit.Created(h.deps.Svc.State()), nil
}

// swagger:route POST /auth/logout Auth logout
// @Summary Log out; the local session is cleared even when the server call fails
// @Tags auth
// @Success 204 "no content"
// @Router /auth/logout [post]
func (h *handlers) logout(r *stdhttp.Request) (any, error) {
	if err := h.deps.Svc.Logout(r.Context()); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route GET /auth/me Auth me
// @Summary Current auth state
// @Tags auth
// @Produce json
// @Success 200 {object} domain.State "ok"
// @Router /auth/me [get]
func (h *handlers) me(_ *stdhttp.Request) (any, error) {
	return h.deps.Svc.State(), nil
}

// swagger:route POST /auth/refresh Auth refresh
// @Summary Re-fetch the current user
// @Tags auth
// @Produce json
// @Success 200 {object} domain.State "ok"
// @Router /auth/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	if _, err := h.deps.Svc.Refresh(r.Context()); err != nil {
		return nil, err
	}
	return h.deps.Svc.State(), nil
}

// swagger:route GET /auth/session Auth session
// @Summary Resident session status
// @Tags auth
// @Produce json
// @Success 200 {object} session.Status "ok"
// @Router /auth/session [get]
func (h *handlers) session(_ *stdhttp.Request) (any, error) {
	if h.deps.Session == nil {
		return nil, errNoSession
	}
	return session.Describe(h.deps.Session, h.deps.Now())
}

// swagger:route POST /auth/mail/send Auth mailSend
// @Summary Send a verification code to a snu.ac.kr address
// @Tags auth
// @Accept json
// @Param payload body domain.MailInput true "Mail"
// @Success 204 "no content"
// @Router /auth/mail/send [post]
func (h *handlers) sendCode(r *stdhttp.Request, in domain.MailInput) (any, error) {
	if err := h.deps.Svc.SendCode(r.Context(), in); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /auth/mail/check Auth mailCheck
// @Summary Validate a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body domain.MailCodeInput true "Code"
// @Success 200 {object} MailCodeOutput "ok"
// @Router /auth/mail/check [post]
func (h *handlers) checkCode(r *stdhttp.Request, in domain.MailCodeInput) (any, error) {
	code, err := h.deps.Svc.CheckCode(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return MailCodeOutput{SuccessCode: code}, nil
}
