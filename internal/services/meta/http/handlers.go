// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"internhasha/internal/core/version"
	"internhasha/internal/modkit/httpkit"
)

// Pinger is satisfied by the API client
type Pinger interface {
	Ping(stdctx.Context) error
}

// TokenReader is satisfied by the session store
type TokenReader interface {
	Token() (string, error)
}

// Deps are the handler dependencies. Nil checks report as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	API         Pinger
	Session     TokenReader
	ReadyWithin time.Duration
	// Modules lists the mounted modules; nil reports none
	Modules func() []string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyWithin <= 0 {
		d.ReadyWithin = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"internhasha-gateway"`
	Started string `json:"started"  example:"2026-03-02T09:00:00Z"`
	Now     string `json:"now"      example:"2026-03-02T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"api"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"dial tcp: lookup api-internhasha.wafflestudio.com: no such host"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-02T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"internhasha-gateway"`
	Started string   `json:"started" example:"2026-03-02T09:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules" example:"applicant,auth,meta,posts"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe: upstream reachability and session store
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyWithin)
	defer cancel()

	api := ReadyCheck{Name: "api", Status: "skipped"}
	if h.deps.API != nil {
		api.Status = "ok"
		if err := h.deps.API.Ping(ctx); err != nil {
			api.Status, api.Error = "fail", err.Error()
		}
	}

	sess := ReadyCheck{Name: "session", Status: "skipped"}
	if h.deps.Session != nil {
		sess.Status = "ok"
		if _, err := h.deps.Session.Token(); err != nil {
			sess.Status, sess.Error = "fail", err.Error()
		}
	}

	overall := "ok"
	if api.Status != "ok" || sess.Status != "ok" {
		overall = "degraded"
		if api.Status == "fail" || sess.Status == "fail" {
			overall = "fail"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{api, sess},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	modules := []string{}
	if h.deps.Modules != nil {
		modules = h.deps.Modules()
	}
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Modules: modules,
	}, nil
}
