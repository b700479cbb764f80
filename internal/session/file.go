package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// File is a KV persisted as one small JSON object.
// Every call takes an exclusive flock on "<path>.lock" so concurrent CLI runs
// never interleave; writes go to a temp file and are renamed into place.
type File struct {
	path string
	lock *flock.Flock
}

// NewFile prepares the directory (0700) and lock for path
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &File{path: path, lock: flock.New(path + ".lock")}, nil
}

// Path returns the backing file
func (f *File) Path() string { return f.path }

// Get implements KV
func (f *File) Get(key string) (string, error) {
	var out string
	err := f.locked(func() error {
		m, err := f.read()
		if err != nil {
			return err
		}
		out = m[key]
		return nil
	})
	return out, err
}

// Set implements KV
func (f *File) Set(key, value string) error {
	return f.locked(func() error {
		m, err := f.read()
		if err != nil {
			return err
		}
		m[key] = value
		return f.write(m)
	})
}

// Delete implements KV; removes the file once it holds nothing
func (f *File) Delete(key string) error {
	return f.locked(func() error {
		m, err := f.read()
		if err != nil {
			return err
		}
		if _, ok := m[key]; !ok {
			return nil
		}
		delete(m, key)
		if len(m) == 0 {
			if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		}
		return f.write(m)
	})
}

// Name implements KV
func (f *File) Name() string { return BackendFile }

func (f *File) locked(fn func() error) error {
	if err := f.lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = f.lock.Unlock() }()
	return fn()
}

func (f *File) read() (map[string]string, error) {
	m := map[string]string{}
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		// a corrupt file is treated as logged out and overwritten on next write
		return map[string]string{}, nil
	}
	return m, nil
}

func (f *File) write(m map[string]string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Rename(name, f.path)
}
