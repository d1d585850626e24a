package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashReader_KnownDigest(t *testing.T) {
	sum, err := HashReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", sum)
}

func TestHashFile_SurvivesRename(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "cross.png")
	require.NoError(t, os.WriteFile(original, []byte("crosshair bytes"), 0644))

	before, err := HashFile(original)
	require.NoError(t, err)

	moved := filepath.Join(dir, "sub", "renamed.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(moved), 0755))
	require.NoError(t, os.Rename(original, moved))

	after, err := HashFile(moved)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, after, 64)
}

func TestHashFile_ChangesWithContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.png")
	require.NoError(t, os.WriteFile(path, []byte("version one"), 0644))
	first, err := HashFile(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("version onE"), 0644))
	second, err := HashFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashFile_Missing(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
