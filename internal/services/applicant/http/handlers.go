// Package http provides http transport for the applicant profile
package http

import (
	stdhttp "net/http"

	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/services/applicant/domain"
)

// Register mounts the profile routes. r is expected to sit behind the auth gate
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/me", h.get)
	httpkit.PutJSON(r, "/me", h.put)
	httpkit.Get(r, "/me/form", h.form)
}

type handlers struct{ svc domain.ServicePort }

// ProfileOutput wraps the profile so an absent one is an explicit null
type ProfileOutput struct {
	Profile *domain.Profile `json:"profile"`
}

// FormOutput is the edit-mode form; Exists is false when no profile was created yet
type FormOutput struct {
	Form   domain.Form `json:"form"`
	Exists bool        `json:"exists"`
}

// formRequest is the wire form. Rules live on domain.Form so messages stay localized
type formRequest struct {
	StudentID string     `json:"studentId" example:"23"`
	MainMajor string     `json:"mainMajor" example:"컴퓨터공학부"`
	SubMajors []string   `json:"subMajors" example:"경영학과"`
	CV        *domain.CV `json:"cv"`
}

// swagger:route GET /applicant/me Applicant get
// @Summary Applicant profile, null when absent
// @Tags applicant
// @Produce json
// @Success 200 {object} ProfileOutput "ok"
// @Failure 401 {object} httpkit.Envelope "login required"
// @Router /applicant/me [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	p, err := h.svc.Fetch(r.Context())
	if err != nil {
		return nil, err
	}
	return ProfileOutput{Profile: p}, nil
}

// swagger:route PUT /applicant/me Applicant put
// @Summary Validate and save the applicant profile
// @Tags applicant
// @Accept json
// @Param payload body formRequest true "Form"
// @Success 204 "no content"
// @Failure 400 {object} httpkit.Envelope "first invalid field"
// @Router /applicant/me [put]
func (h *handlers) put(r *stdhttp.Request, in formRequest) (any, error) {
	err := h.svc.Save(r.Context(), domain.Form{
		StudentID: in.StudentID,
		MainMajor: in.MainMajor,
		SubMajors: in.SubMajors,
		CV:        in.CV,
	})
	if err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route GET /applicant/me/form Applicant form
// @Summary Edit-mode form prefilled from the profile
// @Tags applicant
// @Produce json
// @Success 200 {object} FormOutput "ok"
// @Router /applicant/me/form [get]
func (h *handlers) form(r *stdhttp.Request) (any, error) {
	f, ok, err := h.svc.EditForm(r.Context())
	if err != nil {
		return nil, err
	}
	return FormOutput{Form: f, Exists: ok}, nil
}
