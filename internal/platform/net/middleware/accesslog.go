package middleware

import (
	"net/http"
	"time"

	"internhasha/internal/platform/logger"
	pnet "internhasha/internal/platform/net"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests at warn once they take at least Slow; 0 never does
	Slow time.Duration
	// Log overrides the request scoped logger
	Log *logger.Logger
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// AccessLogZerolog writes one line per gateway request. 5xx replies log at
// error so an upstream outage is visible at the default warn level
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			took := time.Since(start)

			log := opt.Log
			if log == nil {
				log = logger.C(r.Context())
			}
			evt := log.Info()
			switch {
			case rec.status >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && took >= opt.Slow:
				evt = log.Warn()
			}
			if id := pnet.RequestID(r.Context()); id != "" {
				evt = evt.Str("request_id", id)
			}
			if uid := pnet.UserID(r.Context()); uid != "" {
				evt = evt.Str("user_id", uid)
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Int("bytes", rec.written).
				Dur("took", took).
				Msg("gateway request")
		})
	}
}
