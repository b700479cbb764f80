package modkit

import (
	"net/http"

	"internhasha/internal/modkit/httpkit"
	str "internhasha/internal/platform/strings"
)

// Built is the resolved name, prefix and middleware of a module. Modules
// embed it and so satisfy module.Module's Name and Prefix
type Built struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	ports  any
}

// Build applies the module's own defaults first so caller options win
func Build(name, prefix string, opts ...Option) Built {
	b := Built{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Name panics on a blank name so a bad option fails at startup
func (b Built) Name() string { return str.MustString(b.name, "module name") }

// Prefix is the normalized mount path, e.g. "/posts"
func (b Built) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns a copy of the module scoped middleware
func (b Built) Middlewares() []func(http.Handler) http.Handler {
	return append([]func(http.Handler) http.Handler(nil), b.mw...)
}

// Route mounts fn under the module prefix with the module middleware applied
func (b Built) Route(r httpkit.Router, fn func(httpkit.Router)) {
	b.RouteAt(r, b.Prefix(), fn)
}

// RouteAt is Route for a module that also owns a second top level path
func (b Built) RouteAt(r httpkit.Router, path string, fn func(httpkit.Router)) {
	r.Route(str.MustPrefix(path), func(rr httpkit.Router) {
		if len(b.mw) > 0 {
			rr.Use(b.mw...)
		}
		fn(rr)
	})
}

// Requires returns the ports injected with WithPorts when they are a T
func Requires[T any](b Built) (T, bool) {
	v, ok := b.ports.(T)
	return v, ok
}
