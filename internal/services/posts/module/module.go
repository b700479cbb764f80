// Package module wires postings and bookmarks into the gateway
package module

import (
	"internhasha/internal/modkit"
	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/platform/net/middleware"
	"internhasha/internal/services/posts/domain"
	postshttp "internhasha/internal/services/posts/http"
	"internhasha/internal/services/posts/service"
)

// Ports exposed by the posts module
type Ports struct {
	Posts domain.ServicePort
}

// Requires is injected with modkit.WithPorts. A nil Gate falls back to the resident session
type Requires struct {
	Gate middleware.AuthPort
}

// Module serves /posts and /bookmarks
type Module struct {
	modkit.Built

	gate  middleware.AuthPort
	ports Ports
}

// New constructs the posts module. deps.API and deps.Session are required
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	if !deps.Ready() {
		panic("posts module requires deps.API and deps.Session")
	}
	b := modkit.Build("posts", "/posts", opts...)

	var gate middleware.AuthPort = httpkit.NewSessionPort(deps.Session, deps.Session)
	if req, ok := modkit.Requires[Requires](b); ok && req.Gate != nil {
		gate = req.Gate
	}
	return &Module{
		Built: b,
		gate:  gate,
		ports: Ports{Posts: service.New(deps.API, deps.Session)},
	}
}

// MountRoutes keeps listing public; bookmark routes sit behind the session gate
func (m *Module) MountRoutes(r httpkit.Router) {
	svc := m.ports.Posts
	m.Route(r, func(rr httpkit.Router) {
		postshttp.Register(rr, svc)
		httpkit.Protected(rr, m.gate, func(pr httpkit.Router) {
			postshttp.RegisterBookmarks(pr, svc)
		})
	})
	m.RouteAt(r, "/bookmarks", func(rr httpkit.Router) {
		httpkit.Protected(rr, m.gate, func(pr httpkit.Router) {
			postshttp.RegisterBookmarkList(pr, svc)
		})
	})
}

// Ports returns Ports
func (m *Module) Ports() any { return m.ports }
