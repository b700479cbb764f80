// Package domain holds DTOs and ports for the auth flows
package domain

import "internhasha/internal/core/posting"

// LoginInput is the login form
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email" example:"kim@snu.ac.kr"`
	Password string `json:"password" validate:"required"       example:"hunter2"`
}

// SignupInput is the signup form. SuccessCode comes from mail validation.
type SignupInput struct {
	Name        string `json:"name"                  validate:"required,max=50" example:"김와플"`
	Email       string `json:"email"                 validate:"required,email"  example:"kim@snu.ac.kr"`
	Password    string `json:"password"              validate:"required"        example:"hunter2hunter2"`
	SuccessCode string `json:"successCode,omitempty"                            example:"8a1c..."`
}

// MailInput starts verification for a university address
type MailInput struct {
	SnuMail string `json:"snuMail" validate:"required,email" example:"kim@snu.ac.kr"`
}

// MailCodeInput checks a verification code
type MailCodeInput struct {
	SnuMail string `json:"snuMail" validate:"required,email"       example:"kim@snu.ac.kr"`
	Code    string `json:"code"    validate:"required,min=1,max=32" example:"123456"`
}

// State is the provider snapshot
type State struct {
	User    *posting.User `json:"user"    yaml:"user"`
	Loading bool          `json:"loading" yaml:"loading"`
}
