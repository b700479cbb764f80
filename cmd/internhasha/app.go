package main

import (
	"time"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/platform/config"
	"internhasha/internal/session"

	applicantdomain "internhasha/internal/services/applicant/domain"
	applicantsvc "internhasha/internal/services/applicant/service"
	authdomain "internhasha/internal/services/auth/domain"
	authsvc "internhasha/internal/services/auth/service"
	postsdomain "internhasha/internal/services/posts/domain"
	postssvc "internhasha/internal/services/posts/service"
)

// app holds the lazily wired collaborators shared by every command.
// Fields set before wire runs are kept, so tests can inject their own.
type app struct {
	cfg    config.Conf
	now    func() time.Time
	format string

	sess      *session.Session
	api       *internhasha.Client
	auth      authdomain.ServicePort
	posts     postsdomain.ServicePort
	applicant applicantdomain.ServicePort
}

func newApp() *app {
	return &app{cfg: config.New().Prefix("INTERNHASHA_"), now: time.Now}
}

// wire opens the session and builds the client and services
func (a *app) wire() error {
	if a.now == nil {
		a.now = time.Now
	}
	if a.sess == nil {
		s, err := session.Open(session.OptionsFromEnv(a.cfg))
		if err != nil {
			return err
		}
		a.sess = s
	}
	if a.api == nil {
		a.api = internhasha.NewClient(internhasha.OptionsFromEnv(a.cfg), a.sess)
	}
	if a.auth == nil {
		a.auth = authsvc.New(a.api, a.sess, authsvc.WithUserCache(a.sess))
	}
	if a.posts == nil {
		a.posts = postssvc.New(a.api, a.sess)
	}
	if a.applicant == nil {
		a.applicant = applicantsvc.New(a.api)
	}
	return nil
}
