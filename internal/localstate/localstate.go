package localstate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is a directory-backed key/value store: one file per key, surviving
// process restarts. It stands in for the browser's localStorage.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get returns the stored value, or "" when the key is absent.
func (s *Store) Get(key string) string {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return ""
	}
	return string(raw)
}

func (s *Store) Set(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
