// Package memstore is a process-local KVStore used for tests and for running
// the register without durable storage.
package memstore

import (
	"context"
	"slices"
	"sync"

	"pos/internal/domain/repository"
)

// Store keeps values in a map guarded by a mutex. Values are copied on the
// way in and out.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ repository.KVStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return slices.Clone(value), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = slices.Clone(value)

	return nil
}

func (s *Store) SetMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range entries {
		s.values[key] = slices.Clone(value)
	}

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}
