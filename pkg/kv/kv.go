// Package kv provides the embedded key-value store behind the cart and
// session records.
//
// Values are JSON-encoded. Reads fail closed: a missing key or an
// undecodable value reports a miss so callers always degrade to their
// type's empty value instead of crashing on corrupt state.
//
// Two drivers ship with the package:
//
//	kv.NewMemory()        session-scoped, discarded with the process
//	kv.NewFile(root)      durable, one file per key, survives restarts
//
// Usage:
//
//	store := kv.NewFile(config.DataDir())
//	var lines []models.CartLine
//	if store.Get(config.CartKey(), &lines) {
//	    // hit
//	}
package kv

// Store is the narrow read/write/clear contract the services program
// against. Implementations must be safe for concurrent use.
type Store interface {
	// Get decodes the value under key into dest.
	// Returns true on a hit, false on miss or undecodable data.
	Get(key string, dest interface{}) bool

	// Put stores value under key, replacing any previous value.
	Put(key string, value interface{}) error

	// Del removes key. Removing an absent key is a no-op.
	Del(key string) error
}
