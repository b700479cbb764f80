// Package module wires meta endpoints into the gateway
package module

import (
	"time"

	"internhasha/internal/core/version"
	"internhasha/internal/modkit"
	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/modkit/module"
	metahttp "internhasha/internal/services/meta/http"
)

// Module serves /meta. It exports no ports
type Module struct {
	modkit.Built

	deps metahttp.Deps
}

// New constructs the meta module. API and Session are optional; readiness
// reports them as skipped when absent
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	d := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   time.Now(),
		ReadyWithin: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
		Modules:     module.Names,
	}
	if deps.API != nil {
		d.API = deps.API
	}
	if deps.Session != nil {
		d.Session = deps.Session
	}
	return &Module{Built: modkit.Build("meta", "/meta", opts...), deps: d}
}

// MountRoutes mounts the meta handlers
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Route(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports is nil
func (m *Module) Ports() any { return nil }
