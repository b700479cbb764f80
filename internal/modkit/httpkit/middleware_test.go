package httpkit

import (
	"net/http"
	"testing"

	"internhasha/internal/platform/net/middleware"
)

func TestCommonStack_ServesRoutes(t *testing.T) {
	mux, r := newMux()
	MountAPIV1(r, CommonStack(), func(api Router) {
		Get(api, "/posts", func(*http.Request) (any, error) { return "ok", nil })
	})

	rec, env := do(t, mux, http.MethodGet, "/api/v1/posts/", "")
	if rec.Code != http.StatusOK || env.Data != "ok" {
		t.Fatalf("posts: %d %+v", rec.Code, env)
	}
	if env.RequestID == "" || rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("expected request id and no-cache: %+v %v", env, rec.Header())
	}
}

func TestCommonStack_PanicIsEnveloped(t *testing.T) {
	mux, r := newMux()
	MountAPIV1(r, CommonStack(), func(api Router) {
		Get(api, "/boom", func(*http.Request) (any, error) { panic("boom") })
	})

	rec, env := do(t, mux, http.MethodGet, "/api/v1/boom", "")
	if rec.Code != http.StatusInternalServerError || env.RequestID == "" {
		t.Fatalf("got %d %+v", rec.Code, env)
	}
}

func TestCommonStackWith_CORSOrigin(t *testing.T) {
	mux, r := newMux()
	MountAPIV1(r, CommonStackWith(middleware.CORSOptions{AllowedOrigins: []string{"http://localhost:5173"}}), func(api Router) {
		Get(api, "/posts", func(*http.Request) (any, error) { return nil, nil })
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := serve(mux, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("headers %v", rec.Header())
	}
}
