package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("font"), 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Bold.TTF"))
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	writeFile(t, filepath.Join(dir, "mono.otf"))
	writeFile(t, filepath.Join(dir, "README.md"))

	got, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Bold.TTF", "Inter/Inter-Regular.ttf", "mono.otf"}, got)
}

func TestScanDirMissing(t *testing.T) {
	got, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPrefersRegular(t *testing.T) {
	empty := t.TempDir()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a-Bold.ttf"))
	writeFile(t, filepath.Join(dir, "b-Regular.ttf"))

	path, ok := Find(filepath.Join(empty, "missing"), empty, dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "b-Regular.ttf"), path)
}

func TestFindFallsBackToFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "z.otf"))
	writeFile(t, filepath.Join(dir, "a.ttf"))

	path, ok := Find(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "a.ttf"), path)

	_, ok = Find(t.TempDir())
	assert.False(t, ok)
}
