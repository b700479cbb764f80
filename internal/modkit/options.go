package modkit

import "net/http"

// Option adjusts a module while it is being built
type Option func(*Built)

// WithName overrides the module name used for the registry and logs
func WithName(name string) Option {
	return func(b *Built) { b.name = name }
}

// WithPrefix overrides the mount path under /api/v1
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.prefix = prefix }
}

// WithMiddlewares appends middleware that runs only under the module prefix
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.mw = append(b.mw, mw...) }
}

// WithPorts hands a module the ports it requires from its neighbours.
// The concrete type belongs to the receiving module, see Requires
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.ports = p }
}
