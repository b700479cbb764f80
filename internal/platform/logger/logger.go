// Package logger owns the process wide zerolog root and hands out child
// loggers scoped to a component or a request
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"internhasha/internal/platform/config/raw"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level      string
	Format     string // console or json
	Service    string
	Writer     io.Writer
	WithCaller bool
}

// FromEnv reads LOG_* through the raw view, which never logs itself.
// The CLI prints results on stdout, so logs go to stderr at warn by default
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:      rc.Get("LEVEL", "warn"),
		Format:     strings.ToLower(rc.Get("FORMAT", "console")),
		Service:    rc.Get("SERVICE", "internhasha"),
		WithCaller: rc.GetBool("CALLER", false),
	}
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init builds the root logger. Only the first call has any effect
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opt.Writer
		if out == nil {
			out = os.Stderr
		}
		if opt.Format != "json" {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		}

		b := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp()
		if opt.Service != "" {
			b = b.Str("service", opt.Service)
		}
		if opt.WithCaller {
			b = b.Caller()
		}
		l := b.Logger()
		root.Store(&l)
	})
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// parseLevel accepts zerolog level names plus "warning" and "off";
// anything else means warn
func parseLevel(s string) zerolog.Level {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "warning":
		return zerolog.WarnLevel
	case "off":
		return zerolog.Disabled
	case "":
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

// Named returns a child of the root tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

// Into attaches l to ctx for C to find
func Into(ctx context.Context, l *Logger) context.Context {
	return l.WithContext(ctx)
}

// C returns the logger attached with Into, or the root, plus the chi
// request id when ctx carries one
func C(ctx context.Context) *Logger {
	base := zerolog.Ctx(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = Get()
	}
	id := chimw.GetReqID(ctx)
	if id == "" {
		return base
	}
	l := base.With().Str("request_id", id).Logger()
	return &l
}
