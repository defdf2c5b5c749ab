// Package policy validates externally supplied file paths before their
// contents are ingested into the cache. Standard-input payloads never
// pass through here; the checks only make sense for paths the producer
// names explicitly.
package policy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BarrerosLeo/wsl-clip-bridge/internal/config"
)

// Denial sentinels. The bridge maps any of these to exit code 1 with a
// specific diagnostic and performs no write.
var (
	ErrTooLarge    = errors.New("file exceeds maximum size")
	ErrOutsideHome = errors.New("file is outside home directory")
	ErrNotAllowed  = errors.New("file is not in an allowed directory")
)

// Validate applies the configured access checks to path, in order: size
// limit, home restriction, allow-list. Each check runs only when its
// option is set; a nil config validates trivially.
func Validate(path string, cfg *config.BridgeConfig) error {
	if cfg == nil {
		return nil
	}

	if cfg.MaxFileSizeMB != nil && *cfg.MaxFileSizeMB > 0 {
		if info, err := os.Stat(path); err == nil {
			maxBytes := *cfg.MaxFileSizeMB * 1024 * 1024
			if info.Size() > maxBytes {
				return fmt.Errorf("%w of %dMB", ErrTooLarge, *cfg.MaxFileSizeMB)
			}
		}
	}

	if cfg.RestrictToHome != nil && *cfg.RestrictToHome {
		if home := os.Getenv("HOME"); home != "" {
			if !underPrefix(canonicalize(path), canonicalize(home)) {
				return ErrOutsideHome
			}
		}
	}

	if len(cfg.AllowedDirectories) > 0 {
		resolved := canonicalize(path)
		allowed := false
		for _, dir := range cfg.AllowedDirectories {
			if underPrefix(resolved, canonicalize(dir)) {
				allowed = true
				break
			}
		}
		if !allowed {
			return ErrNotAllowed
		}
	}

	return nil
}

// canonicalize resolves path to an absolute, symlink-free form. On
// failure the cleaned literal path is used instead, permissive by
// choice, since symlink resolution can race on 9p mounts under WSL.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

// underPrefix reports whether path sits at or below prefix, comparing
// whole components so that /home/user2 is not "under" /home/user.
func underPrefix(path, prefix string) bool {
	rel, err := filepath.Rel(prefix, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
