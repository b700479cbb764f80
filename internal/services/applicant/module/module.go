// Package module wires the applicant profile into the gateway
package module

import (
	"internhasha/internal/modkit"
	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/platform/net/middleware"
	"internhasha/internal/services/applicant/domain"
	applicanthttp "internhasha/internal/services/applicant/http"
	"internhasha/internal/services/applicant/service"
)

// Ports exposed by the applicant module
type Ports struct {
	Applicant domain.ServicePort
}

// Requires is injected with modkit.WithPorts. A nil Gate falls back to the resident session
type Requires struct {
	Gate middleware.AuthPort
}

// Module serves /applicant; every route needs a session
type Module struct {
	modkit.Built

	gate  middleware.AuthPort
	ports Ports
}

// New constructs the applicant module. deps.API and deps.Session are required
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	if !deps.Ready() {
		panic("applicant module requires deps.API and deps.Session")
	}
	b := modkit.Build("applicant", "/applicant", opts...)

	var gate middleware.AuthPort = httpkit.NewSessionPort(deps.Session, deps.Session)
	if req, ok := modkit.Requires[Requires](b); ok && req.Gate != nil {
		gate = req.Gate
	}
	return &Module{
		Built: b,
		gate:  gate,
		ports: Ports{Applicant: service.New(deps.API)},
	}
}

// MountRoutes mounts the profile routes behind the gate
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Route(r, func(rr httpkit.Router) {
		httpkit.Protected(rr, m.gate, func(pr httpkit.Router) {
			applicanthttp.Register(pr, m.ports.Applicant)
		})
	})
}

// Ports returns Ports
func (m *Module) Ports() any { return m.ports }
