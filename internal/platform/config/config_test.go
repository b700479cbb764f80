package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "internhasha/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("INTERNHASHA_").Prefix("API_")
	if got := api.key("TIMEOUT"); got != "INTERNHASHA_API_TIMEOUT" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMayURL(t *testing.T) {
	c := New().Prefix("U_")
	t.Setenv("U_BASE", "https://api.example.com/")
	if got := c.MayURL("BASE", "x"); got != "https://api.example.com" {
		t.Fatalf("MayURL = %q", got)
	}
	t.Setenv("U_BASE", "/relative")
	if got := c.MayURL("BASE", "https://d"); got != "https://d" {
		t.Fatalf("MayURL fallback = %q", got)
	}
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("P_")
	if got := c.MayPort("PORT", ":4000"); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("P_PORT", "8080")
	if got := c.MayPort("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("P_PORT", ":9090")
	if got := c.MayPort("PORT", ":4000"); got != ":9090" {
		t.Fatalf("MayPort colon = %q", got)
	}
	t.Setenv("P_PORT", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("PORT", ":4000") })
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_INT", "7")
	t.Setenv("M_BADINT", "x")
	t.Setenv("M_F", "2.5")
	t.Setenv("M_B", "true")
	t.Setenv("M_D", "3s")
	t.Setenv("M_BADD", "soon")

	if c.MayInt("INT", 1) != 7 || c.MayInt("BADINT", 1) != 1 || c.MayInt("NONE", 2) != 2 {
		t.Fatalf("MayInt mismatch")
	}
	if c.MayFloat64("F", 0) != 2.5 {
		t.Fatalf("MayFloat64 mismatch")
	}
	if !c.MayBool("B", false) || c.MayBool("NONE", false) {
		t.Fatalf("MayBool mismatch")
	}
	if c.MayDuration("D", time.Second) != 3*time.Second || c.MayDuration("BADD", time.Second) != time.Second {
		t.Fatalf("MayDuration mismatch")
	}
	if c.MayString("NONE", "def") != "def" {
		t.Fatalf("MayString mismatch")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("C_")
	t.Setenv("C_LIST", " a, ,b ,c ")
	got := c.MayCSV("LIST", nil)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("C_EMPTY", " , ")
	if got := c.MayCSV("EMPTY", []string{"d"}); len(got) != 1 || got[0] != "d" {
		t.Fatalf("MayCSV all-empty = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_BACKEND", "KeyRing")
	if got := c.MayEnum("BACKEND", "file", "file", "keyring", "memory"); got != "keyring" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("NONE", "file", "file", "memory"); got != "file" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_BACKEND", "redis")
	kit.MustPanic(t, func() { _ = c.MayEnum("BACKEND", "file", "file", "memory") })
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	if err := os.WriteFile(p, []byte("DOTENV_ONLY=from-file\nDOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("DOTENV_ONLY") })

	if err := LoadDotEnv(p, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("DOTENV_ONLY"); got != "from-file" {
		t.Fatalf("DOTENV_ONLY = %q", got)
	}
	if got := os.Getenv("DOTENV_SET"); got != "from-env" {
		t.Fatalf("existing env should win, got %q", got)
	}
}
