package session

import (
	"os"
	"path/filepath"

	"internhasha/internal/platform/config"
	perr "internhasha/internal/platform/errors"
)

// Backend names
const (
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend string
	File    string
	Account string
}

// OptionsFromEnv reads SESSION_BACKEND, SESSION_FILE and SESSION_KEYRING_ACCOUNT under cfg
func OptionsFromEnv(cfg config.Conf) Options {
	c := cfg.Prefix("SESSION_")
	return Options{
		Backend: c.MayEnum("BACKEND", BackendFile, BackendFile, BackendKeyring, BackendMemory),
		File:    c.MayString("FILE", DefaultFile()),
		Account: c.MayString("KEYRING_ACCOUNT", "default"),
	}
}

// OptionsFromEnvPrefix is OptionsFromEnv over config.New().Prefix(prefix)
func OptionsFromEnvPrefix(prefix string) Options {
	return OptionsFromEnv(config.New().Prefix(prefix))
}

// DefaultFile is <user config dir>/internhasha/session.json, falling back to the temp dir
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "internhasha", "session.json")
}

// Open builds a Session for the configured backend
func Open(o Options) (*Session, error) {
	switch o.Backend {
	case BackendMemory:
		return New(NewMemory()), nil
	case BackendKeyring:
		return New(NewKeyring(o.Account)), nil
	case BackendFile, "":
		path := o.File
		if path == "" {
			path = DefaultFile()
		}
		f, err := NewFile(path)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open session file %s", path)
		}
		return New(f), nil
	}
	return nil, perr.InvalidArgf("unknown session backend %q", o.Backend)
}
