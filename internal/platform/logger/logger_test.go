package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"DEBUG":     zerolog.DebugLevel,
		" info ":    zerolog.InfoLevel,
		"warn":      zerolog.WarnLevel,
		"warning":   zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"off":       zerolog.Disabled,
		"disabled":  zerolog.Disabled,
		"":          zerolog.WarnLevel,
		"loud":      zerolog.WarnLevel,
		"nonsense ": zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v want %v", in, got, want)
		}
	}
}

// lines decodes newline separated JSON log records
func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		m := map[string]any{}
		if err := json.Unmarshal([]byte(l), &m); err != nil {
			t.Fatalf("line %q: %v", l, err)
		}
		out = append(out, m)
	}
	return out
}

func TestRootNamedAndContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "internhasha-test", Writer: &buf})

	Named("posts").Info().Msg("listing")

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-123")
	C(ctx).Info().Msg("root with id")

	ctx = Into(ctx, Named("cli"))
	C(ctx).Warn().Msg("attached")

	got := lines(t, &buf)
	if len(got) != 3 {
		t.Fatalf("got %d lines: %s", len(got), buf.String())
	}
	if got[0]["component"] != "posts" || got[0]["service"] != "internhasha-test" {
		t.Errorf("named: %v", got[0])
	}
	if got[1]["request_id"] != "req-123" || got[1]["component"] != nil {
		t.Errorf("root ctx: %v", got[1])
	}
	if got[2]["component"] != "cli" || got[2]["request_id"] != "req-123" {
		t.Errorf("attached: %v", got[2])
	}

	// later Init calls are ignored
	var other bytes.Buffer
	Init(Options{Writer: &other, Format: "json"})
	Get().Info().Msg("still root")
	if other.Len() != 0 || !strings.Contains(buf.String(), "still root") {
		t.Fatal("second Init replaced the root")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "gw")
	t.Setenv("LOG_CALLER", "yes")
	opt := FromEnv()
	if opt.Level != "debug" || opt.Format != "json" || opt.Service != "gw" || !opt.WithCaller {
		t.Fatalf("FromEnv %+v", opt)
	}

	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "LOG_SERVICE", "LOG_CALLER"} {
		t.Setenv(k, "")
	}
	opt = FromEnv()
	if opt.Level != "warn" || opt.Format != "console" || opt.Service != "internhasha" || opt.WithCaller {
		t.Fatalf("defaults %+v", opt)
	}
}
