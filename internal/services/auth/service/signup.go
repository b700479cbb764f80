package service

import (
	"context"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/platform/logger"
	"internhasha/internal/services/auth/domain"
)

// SignupStrategy builds one signup request body
type SignupStrategy struct {
	Name  string
	Build func(domain.SignupInput) any
}

// Structured is the preferred applicant signup body
var Structured = SignupStrategy{
	Name: "structured",
	Build: func(in domain.SignupInput) any {
		return internhasha.StructuredSignup{
			AuthType: "APPLICANT",
			Info: internhasha.SignupInfo{
				Type:        "APPLICANT",
				Name:        in.Name,
				Email:       in.Email,
				Password:    in.Password,
				SuccessCode: in.SuccessCode,
			},
		}
	},
}

// Flat is the legacy body some deployments still accept
var Flat = SignupStrategy{
	Name: "flat",
	Build: func(in domain.SignupInput) any {
		return internhasha.FlatSignup{Name: in.Name, Email: in.Email, Password: in.Password}
	},
}

// DefaultSignupStrategies is tried in order
func DefaultSignupStrategies() []SignupStrategy { return []SignupStrategy{Structured, Flat} }

// runSignup tries each strategy in order and moves on after any error.
// This also falls through on 4xx like a duplicate email, which then surfaces
// as the last strategy's error.
// TODO: stop on 409 once the server's duplicate-email response is confirmed.
func (s *Svc) runSignup(ctx context.Context, in domain.SignupInput) (internhasha.TokenResponse, error) {
	var (
		out     internhasha.TokenResponse
		lastErr error
	)
	for i, st := range s.signup {
		tr, err := s.api.CreateUser(ctx, st.Build(in))
		if err == nil {
			return tr, nil
		}
		if internhasha.IsAborted(err) {
			return out, err
		}
		if i < len(s.signup)-1 {
			logger.C(ctx).Warn().Err(err).Str("strategy", st.Name).Msg("signup attempt failed, trying next body shape")
		}
		lastErr = err
	}
	return out, lastErr
}
