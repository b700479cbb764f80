// Package middleware adapts chi and go-chi/cors handlers for the gateway router
package middleware

import (
	"net/http"
	"strings"
	"time"

	perr "internhasha/internal/platform/errors"
	pstrings "internhasha/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID propagates or assigns X-Request-ID; the API client forwards it upstream
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP trusts X-Forwarded-For / X-Real-IP
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d, which aborts the upstream call too
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache keeps browsers from caching session bound replies
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress compresses responses at level (see compress/flate)
func Compress(level int) func(http.Handler) http.Handler {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// StripSlashes routes /posts/ as /posts
func StripSlashes() func(http.Handler) http.Handler { return chimw.StripSlashes }

// AllowContentType rejects bodies whose Content-Type is not listed with 415
func AllowContentType(ct ...string) func(http.Handler) http.Handler {
	return chimw.AllowContentType(ct...)
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// CORSOptions is the subset of go-chi/cors the gateway configures.
// Empty AllowedOrigins means loopback pages only; "*" must be asked for
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods     = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsHeaders     = []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}
	loopbackOrigins = []string{
		"http://localhost", "http://localhost:*",
		"http://127.0.0.1", "http://127.0.0.1:*",
		"http://[::1]", "http://[::1]:*",
	}
)

const corsMaxAge = 300

// CORS wraps go-chi/cors. Empty methods, headers and max age fall back to
// what the gateway routes need; X-Request-ID is always exposed.
//
// The gateway acts with the resident session, so a request carrying an
// Origin outside the allow list is refused with 403 before it reaches a
// handler. Requests without Origin (CLI, curl) pass.
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	maxAge := o.MaxAge
	if maxAge == 0 {
		maxAge = corsMaxAge
	}
	allowed := matchOrigins(pstrings.IfEmpty(o.AllowedOrigins, loopbackOrigins))
	cors := chicors.Handler(chicors.Options{
		AllowOriginFunc:  func(_ *http.Request, origin string) bool { return allowed(origin) },
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: o.AllowCredentials,
		MaxAge:           maxAge,
	})
	return func(next http.Handler) http.Handler {
		h := cors(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Header["Origin"]; ok && !allowed(r.Header.Get("Origin")) {
				writeFailure(w, r, perr.New(perr.ErrorCodeForbidden, "origin not allowed"))
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

// matchOrigins compiles an allow list. Matching is case-insensitive, one
// "*" inside an entry is a wildcard and a bare "*" allows every origin
func matchOrigins(list []string) func(origin string) bool {
	type wildcard struct{ prefix, suffix string }
	exact := map[string]bool{}
	var wild []wildcard
	for _, o := range list {
		o = strings.ToLower(strings.TrimSpace(o))
		if o == "*" {
			return func(string) bool { return true }
		}
		if i := strings.IndexByte(o, '*'); i >= 0 {
			wild = append(wild, wildcard{o[:i], o[i+1:]})
			continue
		}
		exact[o] = true
	}
	return func(origin string) bool {
		origin = strings.ToLower(origin)
		if exact[origin] {
			return true
		}
		for _, w := range wild {
			if len(origin) >= len(w.prefix)+len(w.suffix) &&
				strings.HasPrefix(origin, w.prefix) && strings.HasSuffix(origin, w.suffix) {
				return true
			}
		}
		return false
	}
}
