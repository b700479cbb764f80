// @title         internhasha gateway
// @version       0.1.0
// @description   Local single-session JSON API over the internship postings service

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/platform/config"
	"internhasha/internal/platform/logger"
	phttp "internhasha/internal/platform/net/http"
	"internhasha/internal/session"

	"internhasha/internal/services/gateway"
)

func main() {
	// .env may carry LOG_*, so load it before the first log line
	envErr := config.LoadDotEnv()
	l := logger.Named("gateway")
	if envErr != nil {
		l.Panic().Err(envErr).Msg("load .env failed")
	}

	root := config.New().Prefix("INTERNHASHA_")
	gwCfg := root.Prefix("GATEWAY_") // INTERNHASHA_GATEWAY_*

	sess, err := session.Open(session.OptionsFromEnv(root))
	if err != nil {
		l.Panic().Err(err).Msg("session.Open failed")
	}
	api := internhasha.NewClient(internhasha.OptionsFromEnv(root), sess)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads INTERNHASHA_GATEWAY_API_PORT)
	srv := phttp.NewServer(gwCfg)

	auth := gateway.Mount(
		srv.Router(),
		gateway.Options{
			Config:         gwCfg,
			API:            api,
			Session:        sess,
			EnableSwagger:  gwCfg.MayBool("SWAGGER", true),
			EnableProfiler: gwCfg.MayBool("PROFILER", false),
			CORSOrigins:    gwCfg.MayCSV("CORS_ORIGINS", nil),
		},
	)

	// restore the cached user and revalidate the resident token once
	st := auth.Auth.Start(ctx)
	ev := l.Info().Str("backend", sess.Backend()).Str("addr", srv.Addr()).Str("api", api.BaseURL())
	if st.User != nil {
		ev = ev.Str("user", st.User.Name)
	}
	ev.Msg("gateway starting")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
