// Package service reads and upserts the applicant profile
package service

import (
	"context"

	"internhasha/internal/adapters/internhasha"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
	"internhasha/internal/services/applicant/domain"
)

// Service is the applicant profile contract
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	api domain.API
}

// New creates the applicant service
func New(api domain.API) *Svc {
	if api == nil {
		panic("applicant.Service requires a non nil API")
	}
	return &Svc{api: api}
}

// Fetch returns the profile, or nil without error when none was created yet
func (s *Svc) Fetch(ctx context.Context) (*domain.Profile, error) {
	p, err := s.api.ApplicantMe(ctx)
	if err != nil {
		if internhasha.DomainCode(err) == internhasha.ApplicantNotFound {
			return nil, nil
		}
		return nil, err
	}
	return domain.NewProfile(p), nil
}

// EditForm prefills the form from the stored profile; ok is false when there
// is no profile yet
func (s *Svc) EditForm(ctx context.Context) (domain.Form, bool, error) {
	p, err := s.Fetch(ctx)
	if err != nil || p == nil {
		return domain.Form{}, false, err
	}
	return domain.FormFromProfile(p.ApplicantProfile), true, nil
}

// Save validates the form and upserts the profile. Nothing is sent when the
// form has errors; the returned error then unwraps to domain.FormErrors.
func (s *Svc) Save(ctx context.Context, f domain.Form) error {
	if fe := f.Validate(); len(fe) > 0 {
		field, msg := fe.First()
		return perr.WithField(perr.Wrap(fe, perr.ErrorCodeValidation, msg), field)
	}
	payload := f.Payload()
	if err := domain.CheckPayload(payload); err != nil {
		return err
	}
	if err := s.api.PutApplicantMe(ctx, payload); err != nil {
		return err
	}
	logger.C(ctx).Info().Int("enroll_year", payload.EnrollYear).Msg("applicant profile saved")
	return nil
}
