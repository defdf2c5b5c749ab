// Package imaging downscales oversized clipboard images before storage.
//
// The pipeline never fails outward: bytes that cannot be decoded,
// resized, or re-encoded are stored as-is and any diagnosis is deferred
// to the consumer. A cache write must not depend on an image library's
// ability to parse the payload.
package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register webp decoding

	"github.com/BarrerosLeo/wsl-clip-bridge/internal/mimetype"
)

// Downscale returns data resized so that neither dimension exceeds
// maxDim, re-encoded in the same format family as mime. The input is
// returned unchanged when maxDim is zero, the image is already small
// enough, or any stage of the pipeline fails.
func Downscale(data []byte, mime string, maxDim int) []byte {
	if maxDim <= 0 {
		return data
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Debug("image decode failed, storing original", "err", err)
		return data
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	current := max(width, height)
	if current <= maxDim {
		return data
	}

	// Truncate, don't round: a 1000x600 image at maxDim 500 becomes
	// exactly 500x300, and awkward ratios lose the fractional pixel.
	scale := float64(maxDim) / float64(current)
	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	// CatmullRom is the highest-quality resampler x/image ships; it keeps
	// text in screenshots legible after scaling.
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	encoded, err := encode(dst, mimetype.Normalize(mime))
	if err != nil {
		slog.Debug("image encode failed, storing original", "mime", mime, "err", err)
		return data
	}

	slog.Debug("downscaled image",
		"from", image.Pt(width, height), "to", image.Pt(newWidth, newHeight))
	return encoded
}

func encode(img image.Image, mime string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch mime {
	case mimetype.PNG:
		err = png.Encode(&buf, img)
	case mimetype.JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case mimetype.GIF:
		err = gif.Encode(&buf, img, nil)
	default:
		// No pure-Go webp encoder exists; webp falls back to the original.
		return nil, errUnencodable
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var errUnencodable = errors.New("no encoder for format")
