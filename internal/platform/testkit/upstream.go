package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Recorded is one request captured by Upstream
type Recorded struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Upstream is a scripted stand-in for the remote REST API.
// Routes are keyed by "METHOD /path"; unmatched requests get a 404 JSON body.
type Upstream struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	reqs   []Recorded
}

// NewUpstream starts a server that is closed when the test ends
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{routes: map[string]http.HandlerFunc{}}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	// handlers may inspect the body too
	r.Body = io.NopCloser(bytes.NewReader(body))
	u.mu.Lock()
	u.reqs = append(u.reqs, Recorded{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	h, ok := u.routes[r.Method+" "+r.URL.Path]
	u.mu.Unlock()

	if !ok {
		WriteJSON(w, http.StatusNotFound, map[string]any{"message": "no route " + r.Method + " " + r.URL.Path})
		return
	}
	h(w, r)
}

// Handle registers a handler for method and path
func (u *Upstream) Handle(method, path string, h http.HandlerFunc) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[method+" "+path] = h
}

// JSON registers a fixed JSON reply
func (u *Upstream) JSON(method, path string, status int, body any) {
	u.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) { WriteJSON(w, status, body) })
}

// Raw registers a fixed reply with an explicit content type
func (u *Upstream) Raw(method, path string, status int, contentType, body string) {
	u.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Requests returns a copy of everything received so far
func (u *Upstream) Requests() []Recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]Recorded, len(u.reqs))
	copy(out, u.reqs)
	return out
}

// Last returns the most recent request; zero value when none
func (u *Upstream) Last() Recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.reqs) == 0 {
		return Recorded{}
	}
	return u.reqs[len(u.reqs)-1]
}

// Count reports how many requests matched method and path
func (u *Upstream) Count(method, path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, r := range u.reqs {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// WriteJSON writes v with the given status and a JSON content type
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
