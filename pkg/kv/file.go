package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// fileStore persists one JSON file per key under a root directory.
// It models durable browser storage: values survive process restarts
// until explicitly deleted.
type fileStore struct {
	mu   sync.RWMutex
	root string
}

// NewFile returns a store rooted at dir. The directory is created lazily
// on the first Put.
func NewFile(dir string) Store {
	if !filepath.IsAbs(dir) {
		cwd, _ := os.Getwd()
		dir = filepath.Join(cwd, dir)
	}
	return &fileStore{root: dir}
}

// path maps a key like "vastra:cart" onto a filename. Separators are
// flattened so keys can never escape the root.
func (s *fileStore) path(key string) string {
	r := strings.NewReplacer(":", "_", "/", "_", "\\", "_", "..", "_")
	return filepath.Join(s.root, r.Replace(key)+".json")
}

func (s *fileStore) Get(key string, dest interface{}) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("kv/file: read failed, failing closed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn("kv/file: corrupt value, failing closed", "key", key, "error", err)
		return false
	}

	return true
}

func (s *fileStore) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv/file: marshal %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("kv/file: mkdir: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn value.
	full := s.path(key)
	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("kv/file: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, full); err != nil {
		return fmt.Errorf("kv/file: rename %s: %w", key, err)
	}

	return nil
}

func (s *fileStore) Del(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kv/file: delete %s: %w", key, err)
	}
	return nil
}
