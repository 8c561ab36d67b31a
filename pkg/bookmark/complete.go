package bookmark

import "strings"

// Candidate is a completion result: an alias plus its target path, which
// shells show as a description.
type Candidate struct {
	Alias string
	Path  string
}

// Complete returns the aliases in m starting with prefix, sorted by alias.
// Matching is case-sensitive. The result is never nil.
func Complete(prefix string, m Map) []Candidate {
	candidates := []Candidate{}
	for _, alias := range m.Aliases() {
		if strings.HasPrefix(alias, prefix) {
			candidates = append(candidates, Candidate{Alias: alias, Path: m[alias]})
		}
	}
	return candidates
}
