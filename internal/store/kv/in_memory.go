package kv

import (
	"context"
	"sync"
)

// inMemory implements Store using an in-memory map.
type inMemory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewInMemoryStore creates a new instance of Store backed by a map.
func NewInMemoryStore() Store {
	return &inMemory{
		values: make(map[string]string),
	}
}

// Get retrieves the value stored under key.
func (s *inMemory) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *inMemory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Remove deletes the value stored under key.
func (s *inMemory) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
