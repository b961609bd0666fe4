package store

import (
	"sync"

	"golang.org/x/oauth2"
)

const (
	// AccessKey holds the short-lived bearer credential.
	AccessKey = "access"
	// RefreshKey holds the credential exchanged for a new access credential.
	RefreshKey = "refresh"
)

// Store is a pluggable session storage. Absence of a key is a valid state (anonymous session).
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	// Clear removes every key.
	Clear() error
}

// Credentials returns the stored credential pair, or nil when neither credential is stored.
func Credentials(s Store) *oauth2.Token {
	access, hasAccess := s.Get(AccessKey)
	refresh, hasRefresh := s.Get(RefreshKey)
	if !hasAccess && !hasRefresh {
		return nil
	}
	return &oauth2.Token{TokenType: "Bearer", AccessToken: access, RefreshToken: refresh}
}

// SetCredentials writes both credentials of token; an empty refresh credential is not written.
func SetCredentials(s Store, token *oauth2.Token) error {
	if err := s.Set(AccessKey, token.AccessToken); err != nil {
		return err
	}
	if token.RefreshToken == "" {
		return nil
	}
	return s.Set(RefreshKey, token.RefreshToken)
}

type MemoryStoreOption func(*memoryStore)

// WithCredentials seeds the store with a credential pair.
func WithCredentials(token *oauth2.Token) MemoryStoreOption {
	return func(m *memoryStore) {
		if token.AccessToken != "" {
			m.values[AccessKey] = token.AccessToken
		}
		if token.RefreshToken != "" {
			m.values[RefreshKey] = token.RefreshToken
		}
	}
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (m *memoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *memoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]string{}
	return nil
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: map[string]string{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
