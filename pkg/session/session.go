// Package session models the shell state a command reads and mutates: the
// working directory and environment. Commands receive a *Session instead of
// touching process globals, so they can be exercised without a real shell.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Session is a snapshot of the invoking shell's working directory and
// environment.
type Session struct {
	// Dir is the absolute working directory.
	Dir string

	// Env holds environment variables by name.
	Env map[string]string
}

// New returns a session rooted at dir with an empty environment.
func New(dir string) *Session {
	return &Session{
		Dir: dir,
		Env: map[string]string{},
	}
}

// FromProcess snapshots the current process working directory and environment.
func FromProcess() (*Session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	s := New(cwd)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		s.Env[k] = v
	}

	return s, nil
}

// Getwd returns the working directory as an absolute, cleaned path.
func (s *Session) Getwd() (string, error) {
	if s.Dir == "" {
		return "", errors.New("session has no working directory")
	}
	return filepath.Abs(s.Dir)
}

// Chdir changes the working directory. Relative paths resolve against the
// current Dir. The target must be an existing directory; on failure Dir is
// unchanged.
func (s *Session) Chdir(path string) error {
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.Dir, target)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("changing directory to %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("changing directory to %s: not a directory", path)
	}

	s.Dir = filepath.Clean(target)
	return nil
}

// Getenv returns the value of an environment variable, or "" when unset.
func (s *Session) Getenv(key string) string {
	return s.Env[key]
}

// Setenv sets an environment variable on the session only.
func (s *Session) Setenv(key, value string) {
	if s.Env == nil {
		s.Env = map[string]string{}
	}
	s.Env[key] = value
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := New(s.Dir)
	for k, v := range s.Env {
		c.Env[k] = v
	}
	return c
}

// DirExists reports whether path currently resolves to a directory.
func DirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
