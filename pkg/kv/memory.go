package kv

import (
	"encoding/json"
	"sync"

	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// memoryStore keeps encoded values in a map. It models session-scoped
// storage: contents live exactly as long as the process.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() Store {
	return &memoryStore{data: map[string][]byte{}}
}

func (s *memoryStore) Get(key string, dest interface{}) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn("kv/memory: corrupt value, failing closed", "key", key, "error", err)
		return false
	}

	return true
}

func (s *memoryStore) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) Del(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
