package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Store is an in-process key/value cache with a fixed TTL per store.
// Writers must call Invalidate inside the same code path as the database
// write so a subsequent read never observes stale data for its own writes.
type Store struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

func (s *Store) Flush() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// GetOrPopulate returns the cached value for key, calling populate and
// storing its result on a miss. Errors from populate are not cached.
func (s *Store) GetOrPopulate(key string, populate func() (interface{}, error)) (interface{}, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	v, err := populate()
	if err != nil {
		return nil, err
	}
	s.Set(key, v)
	return v, nil
}
