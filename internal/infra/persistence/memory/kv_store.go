// Package memory implements an in-process key-value store. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"autosphere/internal/domain/repository"
)

type kvStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewKVStore returns an empty in-memory repository.KVStore.
func NewKVStore() repository.KVStore {
	return &kvStore{entries: make(map[string][]byte)}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(value), true, nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = slices.Clone(value)

	return nil
}

func (s *kvStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

func (s *kvStore) Close() error {
	return nil
}
