// Package inmemory provides a storage.Driver backed by a Go map.
package inmemory

import (
	"sync"

	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/storage"
)

var _ storage.Driver = (*Driver)(nil)

// Driver implements storage.Driver in memory.
type Driver struct {
	mu sync.Mutex

	bookmarks bookmark.Map

	// saves counts successful Save calls.
	saves int

	// saveErr, when set, is returned by every Save.
	saveErr error
}

// NewDriver creates a driver seeded with a copy of initial.
func NewDriver(initial bookmark.Map) *Driver {
	return &Driver{
		bookmarks: initial.Clone(),
	}
}

// Load returns a copy of the stored map.
func (d *Driver) Load() (bookmark.Map, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.bookmarks.Clone(), nil
}

// Save replaces the stored map with a copy of m.
func (d *Driver) Save(m bookmark.Map) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.saveErr != nil {
		return &bookmark.PersistenceError{Path: d.Location(), Err: d.saveErr}
	}

	d.bookmarks = m.Clone()
	d.saves++
	return nil
}

// Location implements storage.Driver.
func (d *Driver) Location() string {
	return "memory"
}

// Saves reports how many times Save succeeded.
func (d *Driver) Saves() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.saves
}

// FailSaves makes every subsequent Save return err. A nil err clears it.
func (d *Driver) FailSaves(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.saveErr = err
}
