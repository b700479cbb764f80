// Package gateway mounts the local JSON API over the internhasha client
package gateway

import (
	"net/http"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/platform/config"
	"internhasha/internal/platform/logger"
	phttp "internhasha/internal/platform/net/http"
	"internhasha/internal/platform/net/middleware"
	"internhasha/internal/session"

	"internhasha/internal/modkit"
	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/modkit/module"
	"internhasha/internal/modkit/swaggerkit"

	applicantmod "internhasha/internal/services/applicant/module"
	authmod "internhasha/internal/services/auth/module"
	metamod "internhasha/internal/services/meta/module"
	postsmod "internhasha/internal/services/posts/module"
)

// Options are the gateway options
type Options struct {
	Config         config.Conf
	API            *internhasha.Client
	Session        *session.Session
	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string
}

// Mount mounts every module under /api/v1 and returns the auth ports so the
// caller can start the provider
func Mount(r phttp.Router, opt Options) authmod.Ports {
	deps := modkit.Deps{
		Log:     *logger.Named("gateway"),
		Cfg:     opt.Config,
		API:     opt.API,
		Session: opt.Session,
	}

	r.Use(middleware.Heartbeat("/health"))

	// one gate shared by every protected group
	gate := httpkit.NewSessionPort(opt.Session, opt.Session)

	auth := authmod.New(deps)
	mods := []module.Module{
		metamod.New(deps),
		auth,
		postsmod.New(deps, modkit.WithPorts(postsmod.Requires{Gate: gate})),
		applicantmod.New(deps,
			modkit.WithPorts(applicantmod.Requires{Gate: gate}),
			modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
		),
	}

	httpkit.MountAPIV1(r, stack(opt.CORSOrigins), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		module.MountAll(api, mods...)
	})

	return module.MustPortsOf[authmod.Ports](auth)
}

// stack narrows CORS to origins when given
func stack(origins []string) []func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return httpkit.CommonStack()
	}
	return httpkit.CommonStackWith(middleware.CORSOptions{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	})
}
