// Package services implements the storefront's state manager: the cart
// store, the session store, and the registration/login flow over the
// session-scoped user directory.
//
// Services are the sole owners of their persisted state. Views re-read
// through them on every render and never keep authoritative copies.
package services

import (
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/kv"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// SessionStore holds at most one current-user record. Backed by a
// session-scoped kv store, so the record dies with the process.
type SessionStore struct {
	store kv.Store
	key   string
}

// NewSessionStore returns a session store persisting under key.
func NewSessionStore(store kv.Store, key string) *SessionStore {
	return &SessionStore{store: store, key: key}
}

// Current returns the logged-in user, if any. A corrupt record fails
// closed: it reads as "nobody logged in", never as an error.
func (s *SessionStore) Current() (models.User, bool) {
	var user models.User
	if !s.store.Get(s.key, &user) {
		return models.User{}, false
	}
	return user, true
}

// Set replaces the current-user record. Last write wins.
func (s *SessionStore) Set(user models.User) {
	if err := s.store.Put(s.key, user); err != nil {
		logger.Error("session store write failed", "error", err)
	}
}

// Clear removes the record. Clearing an empty session is a no-op.
func (s *SessionStore) Clear() {
	if err := s.store.Del(s.key); err != nil {
		logger.Error("session store clear failed", "error", err)
	}
}
