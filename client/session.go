package client

import (
	"os"
	"path/filepath"
	"sync"

	"failfund/dto"

	json "github.com/goccy/go-json"
)

// Storage keys, matching what browser builds of the app persist.
const (
	tokenKey = "failfund_token"
	userKey  = "failfund_user"
)

// Store persists session state between runs.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FileStore keeps one file per key under dir.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Set(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Session holds the current user and token. State and storage are updated
// together; consumers must treat a nil user as logged out regardless of any
// token still in flight.
type Session struct {
	mu    sync.Mutex
	store Store
	user  *dto.UserResponse
	token string
}

// NewSession restores persisted credentials from the store, if any.
func NewSession(store Store) *Session {
	s := &Session{store: store}

	token, okToken := store.Get(tokenKey)
	rawUser, okUser := store.Get(userKey)
	if okToken && okUser {
		var user dto.UserResponse
		if err := json.Unmarshal([]byte(rawUser), &user); err == nil {
			s.token = token
			s.user = &user
		}
	}
	return s
}

func (s *Session) SetCredentials(user dto.UserResponse, token string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(tokenKey, token); err != nil {
		return err
	}
	if err := s.store.Set(userKey, string(rawUser)); err != nil {
		// Keep the persisted pair consistent: take the token back out
		// rather than leaving it stored without its user.
		_ = s.store.Delete(tokenKey)
		return err
	}
	s.user = &user
	s.token = token
	return nil
}

// Clear logs out: state and persisted storage are wiped synchronously.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	if err := s.store.Delete(tokenKey); err != nil {
		return err
	}
	return s.store.Delete(userKey)
}

func (s *Session) User() *dto.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}
