// Package storage defines how the bookmark map is persisted.
package storage

import (
	"github.com/papercomputeco/jumpmap/pkg/bookmark"
)

// Driver loads and saves the whole bookmark map. Every mutation is a full
// read-modify-write; there is no incremental persistence and no locking, so
// concurrent writers race with last-writer-wins semantics.
type Driver interface {
	// Load returns the current map. Implementations degrade to an empty map
	// rather than failing when the backing data is missing or unreadable.
	Load() (bookmark.Map, error)

	// Save replaces the persisted map with m. Failures are returned as
	// *bookmark.PersistenceError.
	Save(m bookmark.Map) error

	// Location describes where the map is persisted, for user-facing output.
	Location() string
}
