package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pnet "internhasha/internal/platform/net"
	"internhasha/internal/platform/net/middleware"
)

func TestRequestID_VisibleThroughPlatformContext(t *testing.T) {
	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("X-Request-ID", "req-7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-7" {
		t.Fatalf("request id %q", seen)
	}
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":"`+strings.Repeat("포스트", 1<<10)+`"}`)
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("headers %v", rec.Header())
	}
}

func TestAllowContentType_Rejects(t *testing.T) {
	h := middleware.AllowContentType("application/json")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPut, "/applicant/me", strings.NewReader("x"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("text/plain: %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/applicant/me", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("json: %d", rec.Code)
	}
}

func TestHeartbeatAndNoCache(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	h := middleware.Heartbeat("/health")(middleware.NoCache()(next))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))
	if rec.Code != http.StatusTeapot || rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("passthrough %d %v", rec.Code, rec.Header())
	}
}

func TestTimeout_CancelsContext(t *testing.T) {
	h := middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowCredentials: true,
	})
	h := cors(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/posts/7/bookmark", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("origin %v", rec.Header())
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("credentials %v", rec.Header())
	}
	if rec.Header().Get("Access-Control-Max-Age") != "300" {
		t.Fatalf("max age %v", rec.Header())
	}
}

func TestCORS_PatchNotAllowed(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"*"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/applicant/me", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("PATCH preflight allowed: %v", rec.Header())
	}
}

func TestCORS_OriginGate(t *testing.T) {
	cases := map[string]struct {
		allowed []string
		origin  *string
		want    int
	}{
		"no origin header":           {nil, nil, http.StatusOK},
		"loopback by default":        {nil, ptr("http://localhost:5173"), http.StatusOK},
		"loopback ip by default":     {nil, ptr("http://127.0.0.1:4000"), http.StatusOK},
		"foreign refused by default": {nil, ptr("https://evil.example"), http.StatusForbidden},
		"null origin refused":        {nil, ptr("null"), http.StatusForbidden},
		"listed origin":              {[]string{"https://app.example"}, ptr("https://APP.example"), http.StatusOK},
		"listed replaces loopback":   {[]string{"https://app.example"}, ptr("http://localhost:5173"), http.StatusForbidden},
		"wildcard entry":             {[]string{"https://*.example"}, ptr("https://a.example"), http.StatusOK},
		"explicit star":              {[]string{"*"}, ptr("https://evil.example"), http.StatusOK},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			reached := false
			h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: tc.allowed})(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					reached = true
					w.WriteHeader(http.StatusOK)
				}))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			if tc.origin != nil {
				req.Header.Set("Origin", *tc.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status %d, want %d", rec.Code, tc.want)
			}
			if reached != (tc.want == http.StatusOK) {
				t.Fatalf("handler reached=%v", reached)
			}
			if tc.want == http.StatusForbidden && rec.Header().Get("Access-Control-Allow-Origin") != "" {
				t.Fatalf("refused request carries CORS headers %v", rec.Header())
			}
		})
	}
}

func TestCORS_RefusalIsEnveloped(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/applicant/me", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden || !strings.Contains(rec.Body.String(), "origin not allowed") {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func ptr(s string) *string { return &s }
