// Package mimetype classifies the clipboard content types the bridge
// understands: text/plain variants and the four raster image kinds.
package mimetype

import "strings"

const (
	PNG  = "image/png"
	JPEG = "image/jpeg"
	JPG  = "image/jpg" // accepted alias, normalized to JPEG before storage
	GIF  = "image/gif"
	WebP = "image/webp"

	// TextTarget and TextAtom are the lines a TARGETS listing emits for a
	// populated text slot, matching X11 clipboard listing conventions.
	TextTarget = "text/plain;charset=utf-8"
	TextAtom   = "STRING"

	// TargetsSentinel requests the format listing instead of a payload.
	TargetsSentinel = "TARGETS"
)

// IsText reports whether mime is a plain-text kind (any charset suffix).
func IsText(mime string) bool {
	return strings.HasPrefix(mime, "text/plain")
}

// IsImage reports whether mime is one of the supported image kinds.
func IsImage(mime string) bool {
	switch mime {
	case PNG, JPEG, JPG, GIF, WebP:
		return true
	}
	return false
}

// Normalize collapses the jpg alias onto the canonical image/jpeg.
// The sidecar always records the normalized form.
func Normalize(mime string) string {
	if mime == JPG {
		return JPEG
	}
	return mime
}

// Matches reports whether a requested image kind matches a stored one,
// treating image/jpg and image/jpeg as the same kind.
func Matches(requested, stored string) bool {
	return Normalize(requested) == Normalize(stored)
}
