// Package repositories gives the services their data access: the read-only
// product catalogue and the session-scoped user directory, both seeded from
// static JSON fixture documents.
//
// Fixture reads never propagate failures. A missing or unreadable document
// is logged and degrades to an empty result, so every caller sees a total
// function.
package repositories

import (
	"encoding/json"
	"fmt"
	"os"
)

// readDocument decodes one JSON fixture file into dest.
func readDocument(path string, dest interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("repositories: read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("repositories: decode %s: %w", path, err)
	}
	return nil
}
