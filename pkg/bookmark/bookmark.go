// Package bookmark defines the alias to path map persisted by jumpmap and the
// pure operations over it: decoding, encoding, sorting and completion.
package bookmark

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Map binds aliases to filesystem paths. Keys are unique and case-sensitive.
// Paths are stored verbatim and only checked for existence when read.
type Map map[string]string

// Entry is a single bookmark resolved for display.
type Entry struct {
	Alias string
	Path  string

	// Exists reports whether Path currently resolves to a directory.
	Exists bool
}

// Aliases returns the map keys in ascending order.
func (m Map) Aliases() []string {
	aliases := make([]string, 0, len(m))
	for alias := range m {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Clone returns a shallow copy of the map. A nil map clones to an empty map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Entries returns every bookmark sorted by alias, with Exists resolved by
// the given predicate.
func (m Map) Entries(exists func(path string) bool) []Entry {
	entries := make([]Entry, 0, len(m))
	for _, alias := range m.Aliases() {
		path := m[alias]
		entries = append(entries, Entry{
			Alias:  alias,
			Path:   path,
			Exists: exists != nil && exists(path),
		})
	}
	return entries
}

// Decode parses a backing file document. The document must be a single JSON
// object whose values are all strings and whose keys are non-empty. Empty
// input decodes to an empty map. Any other shape is reported as
// ErrCorruptStore.
func Decode(data []byte) (Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Map{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	// "null" unmarshals into a nil map without error.
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrCorruptStore)
	}

	m := make(Map, len(raw))
	for alias, value := range raw {
		if alias == "" {
			return nil, fmt.Errorf("%w: empty alias", ErrCorruptStore)
		}

		var path string
		if err := json.Unmarshal(value, &path); err != nil || isNull(value) {
			return nil, fmt.Errorf("%w: value for %q is not a string", ErrCorruptStore, alias)
		}
		m[alias] = path
	}

	return m, nil
}

// Encode renders the map as an indented JSON object with sorted keys and a
// trailing newline. A nil map encodes as {}.
func Encode(m Map) ([]byte, error) {
	if m == nil {
		m = Map{}
	}

	data, err := json.MarshalIndent(map[string]string(m), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding bookmarks: %w", err)
	}

	return append(data, '\n'), nil
}

// ValidateAlias reports whether alias is usable as a bookmark name.
func ValidateAlias(alias string) error {
	if alias == "" {
		return errors.New("alias must not be empty")
	}

	if strings.HasPrefix(alias, "-") {
		return fmt.Errorf("alias %q must not start with '-'", alias)
	}

	if strings.ContainsAny(alias, `/\`) {
		return fmt.Errorf("alias %q must not contain path separators", alias)
	}

	for _, r := range alias {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("alias %q must not contain whitespace", alias)
		}
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
