package bookmark

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any NotFoundError via errors.Is.
	ErrNotFound = errors.New("bookmark not found")

	// ErrStaleTarget matches any StaleTargetError via errors.Is.
	ErrStaleTarget = errors.New("bookmark target missing")

	// ErrCorruptStore is returned by Decode when the backing document is not
	// an object of string to string.
	ErrCorruptStore = errors.New("corrupt bookmark store")
)

// NotFoundError is returned when an alias is absent from the map.
type NotFoundError struct {
	Alias string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no bookmark named %q; run 'jump' to list bookmarks or 'setjump %s' to create it",
		e.Alias, e.Alias)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StaleTargetError is returned when an alias points at a path that is no
// longer a directory. The entry is left in place.
type StaleTargetError struct {
	Alias string
	Path  string
}

func (e StaleTargetError) Error() string {
	return fmt.Sprintf("bookmark %q points to %s, which no longer exists; run 'deljump %s' to remove it",
		e.Alias, e.Path, e.Alias)
}

func (e StaleTargetError) Is(target error) bool {
	return target == ErrStaleTarget
}

// PersistenceError wraps a failure to write the backing file.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving bookmarks to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
