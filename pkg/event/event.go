// Package event provides a simple synchronous/async event dispatcher.
//
// Store mutations publish events ("cart.updated", "auth.changed") and
// read-side listeners (metrics, render hooks) subscribe. The dispatcher is
// an injectable Bus so tests can run against a private instance; a
// package-level Default bus covers the common single-process case.
package event

import (
	"sync"
)

// Well-known event names.
const (
	CartUpdated = "cart.updated"
	AuthChanged = "auth.changed"
)

// CartUpdate is the payload published on CartUpdated after every cart
// store mutation.
type CartUpdate struct {
	Op        string // "add" | "remove" | "update"
	ItemCount int    // quantity sum after the mutation
}

// AuthChange is the payload published on AuthChanged.
type AuthChange struct {
	Action  string // "login" | "register" | "logout"
	Outcome string // "ok" | "failed"
}

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

// Bus is an in-process publish/subscribe dispatcher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus returns an empty dispatcher.
func NewBus() *Bus {
	return &Bus{handlers: map[string][]Handler{}}
}

// Listen registers a handler for the given event name.
func (b *Bus) Listen(event string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func (b *Bus) Fire(event string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[event]))
	copy(hs, b.handlers[event])
	b.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently.
// It returns immediately without waiting for handlers to complete.
func (b *Bus) FireAsync(event string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[event]))
	copy(hs, b.handlers[event])
	b.mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func (b *Bus) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = map[string][]Handler{}
}

// Default is the process-wide bus.
var Default = NewBus()

// Listen registers a handler on the Default bus.
func Listen(event string, handler Handler) { Default.Listen(event, handler) }

// Fire dispatches on the Default bus.
func Fire(event string, payload interface{}) { Default.Fire(event, payload) }

// Flush clears the Default bus.
func Flush() { Default.Flush() }
