package domain

import (
	"context"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/core/posting"
)

// API is the slice of the REST client the auth flows need
type API interface {
	Login(ctx context.Context, c internhasha.Credentials) (internhasha.TokenResponse, error)
	CreateUser(ctx context.Context, body any) (internhasha.TokenResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (internhasha.Me, error)
	MailCheck(ctx context.Context, snuMail string) error
	MailVerify(ctx context.Context, snuMail string) error
	MailValidate(ctx context.Context, snuMail, code string) (internhasha.SuccessCode, error)
}

// ServicePort is the auth provider contract used by the front ends
type ServicePort interface {
	Start(ctx context.Context) State
	Refresh(ctx context.Context) (*posting.User, error)
	Login(ctx context.Context, in LoginInput) (*posting.User, error)
	Signup(ctx context.Context, in SignupInput) (*posting.User, error)
	Logout(ctx context.Context) error
	SendCode(ctx context.Context, in MailInput) error
	CheckCode(ctx context.Context, in MailCodeInput) (string, error)
	State() State
}
