// Package dotdir resolves the per-user locations jumpmap reads and writes:
// the configuration directory holding config.toml and the bookmark backing
// file, ~/.jumpmap.json by default.
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// dirName is the name of the jumpmap configuration directory.
	dirName = "jumpmap"

	// StoreFileName is the default bookmark backing file in the home directory.
	StoreFileName = ".jumpmap.json"
)

// Manager resolves jumpmap paths against an environment lookup.
type Manager struct {
	getenv func(string) string
}

// Option configures a Manager.
type Option func(*Manager)

// WithEnv reads HOME and XDG_CONFIG_HOME through getenv instead of the
// process environment.
func WithEnv(getenv func(string) string) Option {
	return func(m *Manager) {
		if getenv != nil {
			m.getenv = getenv
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{getenv: os.Getenv}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Resolve returns the absolute path to the configuration directory without
// touching the filesystem. Order of precedence is as follows:
//  1. Provided override
//  2. $XDG_CONFIG_HOME/jumpmap
//  3. ~/.config/jumpmap
func (m *Manager) Resolve(overrideDir string) (string, error) {
	var dir string

	xdg := strings.TrimSpace(m.getenv("XDG_CONFIG_HOME"))
	switch {
	case overrideDir != "":
		dir = overrideDir

	case xdg != "":
		dir = filepath.Join(xdg, dirName)

	default:
		home, err := m.home()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config", dirName)
	}

	return filepath.Abs(dir)
}

// Target resolves the configuration directory like Resolve and creates it
// when missing.
func (m *Manager) Target(overrideDir string) (string, error) {
	dir, err := m.Resolve(overrideDir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating jumpmap directory %s: %w", dir, err)
	}

	return dir, nil
}

// StorePath returns the absolute path of the bookmark backing file. The
// override wins when set; a leading ~ is expanded to the home directory.
// Nothing is created on disk.
func (m *Manager) StorePath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		expanded, err := m.ExpandHome(override)
		if err != nil {
			return "", err
		}
		return filepath.Abs(expanded)
	}

	home, err := m.home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, StoreFileName), nil
}

// ExpandHome replaces a leading "~" or "~/" with the home directory.
func (m *Manager) ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	home, err := m.home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// ExpandHome expands a leading tilde against the process environment.
func ExpandHome(path string) (string, error) {
	return NewManager().ExpandHome(path)
}

// home prefers HOME from the manager's environment and falls back to the
// platform lookup (USERPROFILE on Windows).
func (m *Manager) home() (string, error) {
	if home := strings.TrimSpace(m.getenv("HOME")); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return home, nil
}
