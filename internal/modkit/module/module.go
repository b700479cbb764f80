// Package module is the contract between the gateway and its feature modules
package module

import (
	phttp "internhasha/internal/platform/net/http"
)

// Module is one feature mounted under /api/v1
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	// Ports is the value other modules may consume; nil when nothing is exported
	Ports() any
}

// MountAll registers every module's ports by name, then mounts its routes.
// Registration comes first so a module may look up a neighbour while mounting
func MountAll(r phttp.Router, mods ...Module) {
	for _, m := range mods {
		Register(m.Name(), m.Ports())
	}
	for _, m := range mods {
		m.MountRoutes(r)
	}
}
