// Package storage resolves the on-disk cache location shared by producer
// and consumer invocations.
//
// The layout is deliberately boring: one directory holding at most three
// fixed-name files. There is no locking and no versioning; whoever wrote
// last owns the slot.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const subdir = "wsl-clip-bridge"

// Dir returns the cache directory without creating it.
//
// Under WSL ~/.cache is the most reliable location: /run/user isn't
// always tmpfs and may not exist, so XDG_CACHE_HOME is honoured first,
// HOME second, and a per-UID temp directory is the last resort.
func Dir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CACHE_HOME")); xdg != "" {
		return filepath.Join(xdg, subdir)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".cache", subdir)
	}
	uid := os.Getenv("UID")
	if uid == "" {
		uid = "unknown"
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s", subdir, uid))
}

// ImagePath returns the image payload slot.
func ImagePath() string { return filepath.Join(Dir(), "image.bin") }

// FormatPath returns the sidecar recording the stored image's MIME type.
func FormatPath() string { return filepath.Join(Dir(), "image.format") }

// TextPath returns the text payload slot.
func TextPath() string { return filepath.Join(Dir(), "text.txt") }

// EnsureDir creates the cache directory if needed and restricts it to the
// owning user. Tightening permissions on a pre-existing directory is
// best-effort.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && info.Mode()&0o777 != 0o700 {
		_ = os.Chmod(dir, 0o700)
	}
	return nil
}
