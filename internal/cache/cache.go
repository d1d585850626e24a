// Package cache persists per-image overlay parameters keyed by the content
// hash of the image file, so a crosshair keeps its placement and opacity
// across invocations, renames and moves.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// CachedParams are the parameters remembered for one image.
type CachedParams struct {
	// PathForReadability is the path the image was last used from. It is
	// informational only and never used for lookup.
	PathForReadability string    `json:"path_for_readability" yaml:"path"`
	TargetX            int       `json:"target_x" yaml:"target_x"`
	TargetY            int       `json:"target_y" yaml:"target_y"`
	Opacity            float64   `json:"opacity" yaml:"opacity"`
	UpdatedAt          time.Time `json:"updated_at,omitzero" yaml:"updated_at,omitempty"`
}

// Entry is a cached record together with its key.
type Entry struct {
	Hash         string `json:"hash" yaml:"hash"`
	CachedParams `yaml:",inline"`
}

// Cache maps content hashes to parameters.
type Cache struct {
	History map[string]CachedParams `json:"history"`
}

// IOError reports a failure to write the cache. It never prevents the
// overlay from running.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "write cache " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{History: make(map[string]CachedParams)}
}

// Load reads the cache at path. A missing, unreadable or corrupt file
// yields an empty cache; Load never fails.
func Load(path string) *Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to read cache, starting empty", "path", path, "error", err)
		}
		return New()
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		slog.Warn("cache is corrupt, starting empty", "path", path, "error", err)
		return New()
	}
	if c.History == nil {
		c.History = make(map[string]CachedParams)
	}
	return &c
}

// Save replaces the cache at path, creating the parent directory if it
// does not exist.
func (c *Cache) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Path: path, Err: err}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// Lookup returns the parameters stored for hash.
func (c *Cache) Lookup(hash string) (CachedParams, bool) {
	p, ok := c.History[hash]
	return p, ok
}

// Upsert stores params for hash, replacing any existing entry.
func (c *Cache) Upsert(hash string, params CachedParams) {
	if c.History == nil {
		c.History = make(map[string]CachedParams)
	}
	c.History[hash] = params
}

// Clear removes the entry for hash. It returns the removed parameters and
// whether an entry existed.
func (c *Cache) Clear(hash string) (CachedParams, bool) {
	p, ok := c.History[hash]
	if ok {
		delete(c.History, hash)
	}
	return p, ok
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	return len(c.History)
}

// Entries returns all records, most recently updated first, then by hash.
func (c *Cache) Entries() []Entry {
	entries := make([]Entry, 0, len(c.History))
	for hash, p := range c.History {
		entries = append(entries, Entry{Hash: hash, CachedParams: p})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].UpdatedAt.Equal(entries[j].UpdatedAt) {
			return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
		}
		return entries[i].Hash < entries[j].Hash
	})
	return entries
}
