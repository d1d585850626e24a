package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(label string, x, y int, opacity float64) CachedParams {
	return CachedParams{
		PathForReadability: label,
		TargetX:            x,
		TargetY:            y,
		Opacity:            opacity,
		UpdatedAt:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "nope", "cache"))
	require.NotNil(t, c)
	assert.Equal(t, 0, c.Len())
	assert.NotNil(t, c.History)
}

func TestLoad_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	c := Load(path)
	assert.Equal(t, 0, c.Len())
}

func TestLoad_NullHistoryIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.WriteFile(path, []byte(`{"history": null}`), 0600))

	c := Load(path)
	require.NotNil(t, c.History)
	c.Upsert("k", testParams("a", 1, 2, 1))
	assert.Equal(t, 1, c.Len())
}

func TestLoad_ReadsFormatWithoutUpdatedAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")
	content := `{
  "history": {
    "abc": {
      "path_for_readability": "/home/me/cross.png",
      "target_x": 12,
      "target_y": 34,
      "opacity": 0.75
    }
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	c := Load(path)
	p, ok := c.Lookup("abc")
	require.True(t, ok)
	assert.Equal(t, "/home/me/cross.png", p.PathForReadability)
	assert.Equal(t, 12, p.TargetX)
	assert.Equal(t, 34, p.TargetY)
	assert.Equal(t, 0.75, p.Opacity)
	assert.True(t, p.UpdatedAt.IsZero())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")

	c := New()
	c.Upsert("hash-a", testParams("a.png", 10, 20, 0.5))
	c.Upsert("hash-b", testParams("b.gif", 1, 2, 1))
	require.NoError(t, c.Save(path))

	loaded := Load(path)
	assert.Equal(t, c.History, loaded.History)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reticle", "cache")

	require.NoError(t, New().Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSave_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	err := New().Save(filepath.Join(blocker, "cache"))

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Contains(t, ioErr.Error(), "write cache")
}

func TestUpsert_Overwrites(t *testing.T) {
	c := New()
	c.Upsert("h", testParams("old", 1, 1, 1))
	c.Upsert("h", testParams("new", 5, 6, 0.2))

	p, ok := c.Lookup("h")
	require.True(t, ok)
	assert.Equal(t, "new", p.PathForReadability)
	assert.Equal(t, 1, c.Len())
}

func TestUpsert_ZeroValueCache(t *testing.T) {
	var c Cache
	c.Upsert("h", testParams("x", 0, 0, 1))
	assert.Equal(t, 1, c.Len())
}

func TestClear(t *testing.T) {
	c := New()
	c.Upsert("keep", testParams("keep", 1, 1, 1))
	c.Upsert("drop", testParams("drop", 2, 2, 0.5))

	_, ok := c.Clear("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	removed, ok := c.Clear("drop")
	assert.True(t, ok)
	assert.Equal(t, "drop", removed.PathForReadability)
	assert.Equal(t, 1, c.Len())

	_, stillThere := c.Lookup("keep")
	assert.True(t, stillThere)
	_, gone := c.Lookup("drop")
	assert.False(t, gone)
}

func TestEntries_SortedByRecency(t *testing.T) {
	c := New()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	older := testParams("older", 0, 0, 1)
	older.UpdatedAt = base
	newer := testParams("newer", 0, 0, 1)
	newer.UpdatedAt = base.Add(time.Hour)
	tieA := testParams("tie-a", 0, 0, 1)
	tieA.UpdatedAt = base
	c.Upsert("z-older", older)
	c.Upsert("m-newer", newer)
	c.Upsert("a-tie", tieA)

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "m-newer", entries[0].Hash)
	assert.Equal(t, "a-tie", entries[1].Hash)
	assert.Equal(t, "z-older", entries[2].Hash)
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache")

	c := New()
	c.Upsert("h", testParams("x", 1, 2, 1))
	require.NoError(t, c.Save(path))
	require.NoError(t, c.Save(path))

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "cache", names[0].Name())
}
