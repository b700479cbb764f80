package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status summarizes the resident session for display
type Status struct {
	Backend   string     `json:"backend"             yaml:"backend"`
	Present   bool       `json:"present"             yaml:"present"`
	JWT       bool       `json:"jwt"                 yaml:"jwt"`
	Subject   string     `json:"subject,omitempty"   yaml:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	Expired   bool       `json:"expired"             yaml:"expired"`
}

// Describe reports whether a token is resident and, when it is a JWT, its
// subject and expiry read from unverified claims. The signature is never
// checked here; the server remains the authority.
func Describe(s *Session, now time.Time) (Status, error) {
	st := Status{Backend: s.Backend()}
	tok, err := s.Token()
	if err != nil {
		return st, err
	}
	if tok == "" {
		return st, nil
	}
	st.Present = true

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return st, nil
	}
	st.JWT = true
	if sub, err := claims.GetSubject(); err == nil {
		st.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time.UTC()
		st.ExpiresAt = &t
		st.Expired = !now.Before(t)
	}
	return st, nil
}
