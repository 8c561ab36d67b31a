// Package jsonfile persists the bookmark map as a single JSON document,
// conventionally ~/.jumpmap.json. The document is the map itself: an object of
// alias to path with no envelope or version field.
package jsonfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/logger"
	"github.com/papercomputeco/jumpmap/pkg/storage"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

var _ storage.Driver = (*Driver)(nil)

// Driver implements storage.Driver over a JSON file.
type Driver struct {
	path   string
	logger *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for load warnings. Defaults to logger.Nop().
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDriver returns a driver for the backing file at path. The file is not
// touched until Load or Save is called.
func NewDriver(path string, opts ...Option) *Driver {
	d := &Driver{
		path:   path,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Location returns the backing file path.
func (d *Driver) Location() string {
	return d.path
}

// Load reads the backing file in full. A missing file yields an empty map and
// is not created. An unreadable or corrupt file is logged as a warning and
// also yields an empty map, so Load never returns an error.
func (d *Driver) Load() (bookmark.Map, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.logger.Warn("could not read bookmarks, starting empty",
				"path", d.path,
				"error", err,
			)
		}
		return bookmark.Map{}, nil
	}

	m, err := bookmark.Decode(data)
	if err != nil {
		d.logger.Warn("bookmark file is corrupt, starting empty",
			"path", d.path,
			"error", err,
		)
		return bookmark.Map{}, nil
	}

	d.logger.Debug("loaded bookmarks", "path", d.path, "count", len(m))
	return m, nil
}

// Save writes the full map to a temp file next to the backing file and
// renames it into place, so readers observe either the old or the new
// document. When the backing file is a symlink the link's target is
// replaced and the link survives; an existing file keeps its permissions.
func (d *Driver) Save(m bookmark.Map) error {
	data, err := bookmark.Encode(m)
	if err != nil {
		return &bookmark.PersistenceError{Path: d.path, Err: err}
	}

	if err := d.writeAtomic(data); err != nil {
		return &bookmark.PersistenceError{Path: d.path, Err: err}
	}

	d.logger.Debug("saved bookmarks", "path", d.path, "count", len(m))
	return nil
}

func (d *Driver) writeAtomic(data []byte) error {
	target, err := d.resolveTarget()
	if err != nil {
		return err
	}

	mode := os.FileMode(fileMode)
	keepMode := false
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
		keepMode = true
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return err
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(target), uuid.NewString()))
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}

	cleanup := func(cause error) error {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return cause
	}

	// OpenFile applies the umask; an existing file's bits are restored as is.
	if keepMode {
		if err := f.Chmod(mode); err != nil {
			return cleanup(err)
		}
	}

	if _, err := f.Write(data); err != nil {
		return cleanup(err)
	}
	if err := f.Sync(); err != nil {
		return cleanup(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}

// resolveTarget returns the file a save should replace: the backing path
// with symlinks followed. A dangling link resolves to the path it names.
func (d *Driver) resolveTarget() (string, error) {
	resolved, err := filepath.EvalSymlinks(d.path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	link, lerr := os.Readlink(d.path)
	if lerr != nil {
		return d.path, nil
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(d.path), link)
	}
	return link, nil
}
