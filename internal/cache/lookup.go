package cache

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch is returned when no cached hash starts with a prefix.
var ErrNoMatch = errors.New("no cached entry matches")

// ErrAmbiguousHash is returned when a prefix matches more than one hash.
var ErrAmbiguousHash = errors.New("hash prefix is ambiguous")

// ResolveHash expands a hash prefix to the full cached hash. An exact
// match always wins.
func (c *Cache) ResolveHash(prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", fmt.Errorf("%w: empty prefix", ErrNoMatch)
	}
	if _, ok := c.History[prefix]; ok {
		return prefix, nil
	}

	var found string
	matches := 0
	for hash := range c.History {
		if strings.HasPrefix(hash, prefix) {
			found = hash
			matches++
		}
	}

	switch matches {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoMatch, prefix)
	case 1:
		return found, nil
	default:
		return "", fmt.Errorf("%w: %s matches %d entries", ErrAmbiguousHash, prefix, matches)
	}
}

// Search returns the entries whose recorded path contains term.
// Case-insensitive substring match.
func Search(entries []Entry, term string) []Entry {
	if term == "" {
		return entries
	}

	term = strings.ToLower(term)
	var result []Entry

	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.PathForReadability), term) {
			result = append(result, e)
		}
	}

	return result
}
