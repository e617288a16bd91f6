// Package seeders writes the static JSON fixture documents the storefront
// reads at runtime. Seeders run via the CLI: vastra seed
//
// Define a seeder in any file in this package:
//
//	func init() {
//	    seeders.Register("products", SeedProducts)
//	}
//
//	func SeedProducts(dir string) error {
//	    // write a document …
//	}
package seeders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SeederFunc writes one fixture document into dir.
type SeederFunc func(dir string) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(dir string) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	if len(current) == 0 {
		fmt.Println("  (no seeders registered)")
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("seeders: mkdir %s: %w", dir, err)
	}

	for _, e := range current {
		fmt.Printf("  • Running seeder: %s … ", e.name)
		if err := e.fn(dir); err != nil {
			fmt.Println("failed")
			return fmt.Errorf("seeders: %s: %w", e.name, err)
		}
		fmt.Println("done")
	}

	return nil
}

// writeDocument marshals v with indentation and writes it into dir.
func writeDocument(dir, name string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), raw, 0o644)
}
