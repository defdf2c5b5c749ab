package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirPrecedence(t *testing.T) {
	tmp := t.TempDir()

	t.Setenv("XDG_CACHE_HOME", tmp)
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join(tmp, "wsl-clip-bridge"), Dir())

	// Blank XDG value falls through to HOME.
	t.Setenv("XDG_CACHE_HOME", "  ")
	assert.Equal(t, filepath.Join("/home/someone", ".cache", "wsl-clip-bridge"), Dir())

	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "")
	t.Setenv("UID", "1000")
	assert.Equal(t, filepath.Join(os.TempDir(), "wsl-clip-bridge-1000"), Dir())

	t.Setenv("UID", "")
	assert.Equal(t, filepath.Join(os.TempDir(), "wsl-clip-bridge-unknown"), Dir())
}

func TestSlotPaths(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)

	dir := Dir()
	assert.Equal(t, filepath.Join(dir, "image.bin"), ImagePath())
	assert.Equal(t, filepath.Join(dir, "image.format"), FormatPath())
	assert.Equal(t, filepath.Join(dir, "text.txt"), TextPath())
}

func TestEnsureDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)

	require.NoError(t, EnsureDir())

	info, err := os.Stat(Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode()&0o777)

	// Idempotent.
	require.NoError(t, EnsureDir())
}
