package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore is a process-local RevocationStore used in tests and
// redis-less development. Expired entries are dropped lazily on read.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore builds an empty store.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// WithClock overrides the store's clock for expiry tests.
func (s *MemoryRevocationStore) WithClock(now func() time.Time) *MemoryRevocationStore {
	s.now = now
	return s
}

func (s *MemoryRevocationStore) Block(ctx context.Context, tokenString string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.set(blockKeyPrefix+tokenString, ttl)
	return nil
}

func (s *MemoryRevocationStore) IsBlocked(ctx context.Context, tokenString string) (bool, error) {
	return s.exists(blockKeyPrefix + tokenString), nil
}

func (s *MemoryRevocationStore) RegisterRefresh(ctx context.Context, subject string, ttl time.Duration) error {
	s.set(refreshKeyPrefix+subject, ttl)
	return nil
}

func (s *MemoryRevocationStore) HasRefresh(ctx context.Context, subject string) (bool, error) {
	return s.exists(refreshKeyPrefix + subject), nil
}

func (s *MemoryRevocationStore) ClearRefresh(ctx context.Context, subject string) error {
	s.mu.Lock()
	delete(s.entries, refreshKeyPrefix+subject)
	s.mu.Unlock()
	return nil
}

func (s *MemoryRevocationStore) set(key string, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = s.now().Add(ttl)
	s.mu.Unlock()
}

func (s *MemoryRevocationStore) exists(key string) bool {
	s.mu.RLock()
	expiresAt, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().After(expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return false
	}
	return true
}
