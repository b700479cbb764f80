package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "internhasha/internal/platform/net/http"
	"internhasha/internal/platform/net/middleware"
)

// CommonStack is the gateway's /api/v1 middleware; CORS admits loopback pages only
func CommonStack() []func(http.Handler) http.Handler {
	return CommonStackWith(middleware.CORSOptions{})
}

// CommonStackWith orders request id first so the access log, panic
// envelope and upstream call all carry it
func CommonStackWith(cors middleware.CORSOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: slowRequest}),
		middleware.RecoverJSON,
		middleware.CORS(cors),
		middleware.StripSlashes(),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(requestTimeout),
	}
}

const (
	slowRequest    = 500 * time.Millisecond
	requestTimeout = 30 * time.Second
)

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
