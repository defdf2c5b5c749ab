// Package logging configures the global slog logger for the bridge.
//
// Stdout belongs to the clipboard protocol (payload bytes, target
// lists), so all logging goes to stderr and defaults to warn: quiet
// enough to sit in a pipe, loud enough to explain a denial.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Format selects the log output format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format, returning FormatAuto for
// unknown values.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "text", "tint", "human":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// ParseLevel converts a string to a slog.Level, defaulting to Warn.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// SetupFromEnv configures logging from WSL_CLIP_BRIDGE_LOG and
// WSL_CLIP_BRIDGE_LOG_FORMAT. The xclip flag surface has no room for
// logging flags, so env vars carry them instead.
func SetupFromEnv() {
	Setup(ParseFormat(os.Getenv("WSL_CLIP_BRIDGE_LOG_FORMAT")),
		ParseLevel(os.Getenv("WSL_CLIP_BRIDGE_LOG")))
}

// Setup configures the global slog logger. Call once at startup.
func Setup(format Format, level slog.Level) {
	w := os.Stderr
	useTint := format == FormatText || (format == FormatAuto && IsTTY(w))

	var h slog.Handler
	if useTint {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(h))
}
