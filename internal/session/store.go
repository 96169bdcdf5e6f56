package session

import (
	"context"
	"sync"

	"pashen/inventory-console/internal/localstate"
)

// TokenStore abstracts where the session token is persisted, so the backing
// can be swapped without touching the session itself.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in process memory only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// TokenKey is the persisted key name; it survives from the web console, whose
// router guard reads the same key.
const TokenKey = "sis.access_token"

// FileStore persists the token through the local state directory. The
// literals "null" and "undefined" load as absent: the web console's storage
// layer could leave those behind.
type FileStore struct {
	state *localstate.Store
}

func NewFileStore(state *localstate.Store) *FileStore {
	return &FileStore{state: state}
}

func (s *FileStore) Load(ctx context.Context) (string, error) {
	token := s.state.Get(TokenKey)
	if token == "null" || token == "undefined" {
		return "", nil
	}
	return token, nil
}

func (s *FileStore) Save(ctx context.Context, token string) error {
	return s.state.Set(TokenKey, token)
}

func (s *FileStore) Clear(ctx context.Context) error {
	return s.state.Delete(TokenKey)
}
