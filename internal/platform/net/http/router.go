package http

import "net/http"

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against. The gateway only speaks
// GET, POST, PUT and DELETE; anything else goes through Method.
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Delete(path string, h Handler)
	Method(method, path string, h Handler)

	// Handle registers h for every method on pattern
	Handle(pattern string, h http.Handler)
	// Mount attaches h under pattern with the prefix stripped
	Mount(pattern string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))
}
