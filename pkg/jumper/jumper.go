// Package jumper implements the bookmark operations behind the jump, setjump
// and deljump commands. Each operation is one read-modify-write transaction
// against a storage.Driver; working directory changes are applied to an
// explicit *session.Session rather than the process.
package jumper

import (
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/logger"
	"github.com/papercomputeco/jumpmap/pkg/session"
	"github.com/papercomputeco/jumpmap/pkg/storage"
)

// SetStatus describes what Set did to the map.
type SetStatus int

const (
	// SetCreated means the alias was new.
	SetCreated SetStatus = iota

	// SetOverwritten means the alias existed and pointed elsewhere.
	SetOverwritten

	// SetUnchanged means the alias already pointed at the directory; nothing
	// was written.
	SetUnchanged
)

func (s SetStatus) String() string {
	switch s {
	case SetCreated:
		return "created"
	case SetOverwritten:
		return "overwritten"
	case SetUnchanged:
		return "unchanged"
	default:
		return fmt.Sprintf("SetStatus(%d)", int(s))
	}
}

// SetResult reports the outcome of Set.
type SetResult struct {
	Alias string
	Path  string

	// Previous is the old target when Status is SetOverwritten.
	Previous string

	Status SetStatus
}

// Jumper runs bookmark operations against a store.
type Jumper struct {
	store  storage.Driver
	logger *slog.Logger
	exists func(path string) bool
}

// Option configures a Jumper.
type Option func(*Jumper)

// WithLogger sets the logger for warnings such as overwrites.
func WithLogger(l *slog.Logger) Option {
	return func(j *Jumper) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithExistsFunc overrides how target directories are checked.
// Defaults to session.DirExists.
func WithExistsFunc(fn func(path string) bool) Option {
	return func(j *Jumper) {
		if fn != nil {
			j.exists = fn
		}
	}
}

// New creates a Jumper over store.
func New(store storage.Driver, opts ...Option) *Jumper {
	j := &Jumper{
		store:  store,
		logger: logger.Nop(),
		exists: session.DirExists,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Store returns the underlying driver.
func (j *Jumper) Store() storage.Driver {
	return j.store
}

// List returns bookmarks sorted by alias with existence resolved. A non-empty
// match is a doublestar glob applied to aliases. An empty map yields an empty
// slice, not an error.
func (j *Jumper) List(match string) ([]bookmark.Entry, error) {
	if match != "" && !doublestar.ValidatePattern(match) {
		return nil, fmt.Errorf("invalid match pattern %q", match)
	}

	m, err := j.store.Load()
	if err != nil {
		return nil, err
	}

	entries := m.Entries(j.exists)
	if match == "" {
		return entries, nil
	}

	filtered := make([]bookmark.Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := doublestar.Match(match, e.Alias)
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", match, err)
		}
		if ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Resolve returns the stored path for alias without checking it on disk.
func (j *Jumper) Resolve(alias string) (string, error) {
	m, err := j.store.Load()
	if err != nil {
		return "", err
	}

	path, ok := m[alias]
	if !ok {
		return "", bookmark.NotFoundError{Alias: alias}
	}
	return path, nil
}

// Jump moves sess to the directory bookmarked as alias and returns it. The
// session is untouched when the alias is unknown or its target is gone.
func (j *Jumper) Jump(sess *session.Session, alias string) (string, error) {
	path, err := j.Resolve(alias)
	if err != nil {
		return "", err
	}

	if !j.exists(path) {
		return "", bookmark.StaleTargetError{Alias: alias, Path: path}
	}

	if err := sess.Chdir(path); err != nil {
		// Raced with a removal between the check and the chdir.
		return "", bookmark.StaleTargetError{Alias: alias, Path: path}
	}

	j.logger.Debug("jumped", "alias", alias, "path", sess.Dir)
	return sess.Dir, nil
}

// Set bookmarks the session's working directory as alias. Re-bookmarking the
// same directory is a no-op that does not write; pointing an existing alias
// elsewhere logs a warning and overwrites it.
func (j *Jumper) Set(sess *session.Session, alias string) (SetResult, error) {
	if err := bookmark.ValidateAlias(alias); err != nil {
		return SetResult{}, err
	}

	dir, err := sess.Getwd()
	if err != nil {
		return SetResult{}, err
	}

	m, err := j.store.Load()
	if err != nil {
		return SetResult{}, err
	}

	result := SetResult{Alias: alias, Path: dir, Status: SetCreated}
	if previous, ok := m[alias]; ok {
		if previous == dir {
			result.Status = SetUnchanged
			return result, nil
		}

		j.logger.Warn("overwriting bookmark", "alias", alias, "previous", previous, "path", dir)
		result.Status = SetOverwritten
		result.Previous = previous
	}

	m[alias] = dir
	if err := j.store.Save(m); err != nil {
		return SetResult{}, err
	}

	return result, nil
}

// Remove deletes alias and returns its former target. An unknown alias leaves
// the store untouched.
func (j *Jumper) Remove(alias string) (string, error) {
	m, err := j.store.Load()
	if err != nil {
		return "", err
	}

	path, ok := m[alias]
	if !ok {
		return "", bookmark.NotFoundError{Alias: alias}
	}

	delete(m, alias)
	if err := j.store.Save(m); err != nil {
		return "", err
	}

	return path, nil
}

// Stale returns the bookmarks whose targets no longer exist.
func (j *Jumper) Stale() ([]bookmark.Entry, error) {
	entries, err := j.List("")
	if err != nil {
		return nil, err
	}

	stale := make([]bookmark.Entry, 0)
	for _, e := range entries {
		if !e.Exists {
			stale = append(stale, e)
		}
	}
	return stale, nil
}

// Prune removes every stale bookmark in a single save and returns what was
// removed. Nothing is written when no bookmark is stale.
func (j *Jumper) Prune() ([]bookmark.Entry, error) {
	m, err := j.store.Load()
	if err != nil {
		return nil, err
	}

	removed := make([]bookmark.Entry, 0)
	for _, e := range m.Entries(j.exists) {
		if !e.Exists {
			removed = append(removed, e)
			delete(m, e.Alias)
		}
	}

	if len(removed) == 0 {
		return removed, nil
	}

	if err := j.store.Save(m); err != nil {
		return nil, err
	}
	return removed, nil
}

// Complete returns aliases starting with prefix, loading the store fresh on
// every call. It never fails: a store error yields no candidates.
func (j *Jumper) Complete(prefix string) []bookmark.Candidate {
	m, err := j.store.Load()
	if err != nil {
		j.logger.Debug("completion load failed", "error", err)
		return []bookmark.Candidate{}
	}
	return bookmark.Complete(prefix, m)
}
