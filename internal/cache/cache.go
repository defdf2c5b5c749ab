// Package cache implements the freshness rules for the two clipboard
// slots. Freshness is never stored; it is computed from filesystem
// modification time against a TTL, and stale files are evicted
// opportunistically whenever they are noticed.
package cache

import (
	"os"
	"strings"
	"time"

	"github.com/BarrerosLeo/wsl-clip-bridge/internal/mimetype"
	"github.com/BarrerosLeo/wsl-clip-bridge/internal/storage"
)

// Fresh reports whether path holds a valid cached payload: a regular,
// non-empty file modified no longer than ttl ago. The boundary is
// inclusive: a file exactly ttl old is still fresh.
func Fresh(path string, ttl time.Duration) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
		return false
	}
	return withinTTL(info.ModTime(), time.Now(), ttl)
}

// withinTTL holds for elapsed times up to and including ttl. Files with
// modification times in the future are treated as stale rather than
// trusted.
func withinTTL(mod, now time.Time, ttl time.Duration) bool {
	elapsed := now.Sub(mod)
	return elapsed >= 0 && elapsed <= ttl
}

// Targets returns the MIME kinds currently retrievable, image formats
// before text. Stale slots encountered along the way are evicted.
// An empty clipboard yields an empty list, not an error.
func Targets(ttl time.Duration) []string {
	var targets []string

	imagePath := storage.ImagePath()
	if Fresh(imagePath, ttl) {
		if b, err := os.ReadFile(storage.FormatPath()); err == nil {
			format := strings.TrimSpace(string(b))
			targets = append(targets, format)
			if format == mimetype.JPEG {
				targets = append(targets, mimetype.JPG)
			}
		}
	} else if exists(imagePath) {
		EvictImage()
	}

	textPath := storage.TextPath()
	if Fresh(textPath, ttl) {
		targets = append(targets, mimetype.TextTarget, mimetype.TextAtom)
	} else if exists(textPath) {
		EvictText()
	}

	return targets
}

// StoredFormat returns the sidecar's normalized MIME string, or "" when
// the sidecar is missing or unreadable.
func StoredFormat() string {
	b, err := os.ReadFile(storage.FormatPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// EvictImage removes the image payload and its sidecar. Best-effort.
func EvictImage() {
	_ = os.Remove(storage.ImagePath())
	_ = os.Remove(storage.FormatPath())
}

// EvictText removes the text payload. Best-effort.
func EvictText() {
	_ = os.Remove(storage.TextPath())
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
