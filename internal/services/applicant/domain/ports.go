package domain

import (
	"context"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/core/posting"
)

// API is the slice of the REST client the profile flows need
type API interface {
	ApplicantMe(ctx context.Context) (internhasha.ApplicantProfile, error)
	PutApplicantMe(ctx context.Context, p internhasha.ApplicantProfile) error
}

// ServicePort is the applicant profile contract used by the front ends
type ServicePort interface {
	Fetch(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, f Form) error
	EditForm(ctx context.Context) (Form, bool, error)
}

// Profile is the stored profile with display labels
type Profile struct {
	internhasha.ApplicantProfile `yaml:",inline"`
	DepartmentLabel string `json:"departmentLabel" yaml:"departmentLabel" example:"컴퓨터공학부 · 경영학과(복수전공)"`
	Cohort          string `json:"cohort"          yaml:"cohort"          example:"23학번"`
}

// NewProfile attaches the display labels
func NewProfile(p internhasha.ApplicantProfile) *Profile {
	return &Profile{
		ApplicantProfile: p,
		DepartmentLabel:  posting.DepartmentLabel(p.Department),
		Cohort:           posting.CohortLabel(p.EnrollYear),
	}
}
