// Package module wires the auth flows into the gateway
package module

import (
	"internhasha/internal/modkit"
	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/services/auth/domain"
	authhttp "internhasha/internal/services/auth/http"
	"internhasha/internal/services/auth/service"
	"internhasha/internal/session"
)

// Ports exposed by the auth module
type Ports struct {
	Auth domain.ServicePort
}

// Module serves /auth. Login and signup are public; logout and me read the
// resident session
type Module struct {
	modkit.Built

	sess  *session.Session
	ports Ports
}

// New constructs the auth module. deps.API and deps.Session are required
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	if !deps.Ready() {
		panic("auth module requires deps.API and deps.Session")
	}
	svc := service.New(deps.API, deps.Session, service.WithUserCache(deps.Session))
	return &Module{
		Built: modkit.Build("auth", "/auth", opts...),
		sess:  deps.Session,
		ports: Ports{Auth: svc},
	}
}

// MountRoutes mounts the auth handlers
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Route(r, func(rr httpkit.Router) {
		authhttp.Register(rr, authhttp.Deps{Svc: m.ports.Auth, Session: m.sess})
	})
}

// Ports returns Ports
func (m *Module) Ports() any { return m.ports }
