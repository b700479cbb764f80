package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
	pnet "internhasha/internal/platform/net"
)

// RecoverJSON turns a handler panic into the standard failure envelope
// with status 500. http.ErrAbortHandler is re-raised untouched
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			writeFailure(w, r, perr.PanicErrf("internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}

// writeFailure writes err as the failure envelope, echoing the request id
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	reqID := pnet.RequestID(r.Context())
	status, env := pnet.Failure(err, reqID)
	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
