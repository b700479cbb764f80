package middleware

import (
	"net/http"

	pnet "internhasha/internal/platform/net"
)

// AuthPort resolves the signed in user behind a request
type AuthPort interface {
	// Parse returns the user id or an error when no session is active
	Parse(r *http.Request) (userID string, err error)
}

// Auth gates next behind p. A nil port passes everything through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Failure(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), uid)))
		})
	}
}
