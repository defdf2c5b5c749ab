// Package bridge maps the xclip command surface onto the disk cache.
//
// Each invocation is a complete, stateless transaction: output mode
// serves or evicts cached payloads, input mode ingests new ones. Exit
// codes follow xclip: 0 available/stored, 1 anything else.
package bridge

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/BarrerosLeo/wsl-clip-bridge/internal/cache"
	"github.com/BarrerosLeo/wsl-clip-bridge/internal/config"
	"github.com/BarrerosLeo/wsl-clip-bridge/internal/imaging"
	"github.com/BarrerosLeo/wsl-clip-bridge/internal/mimetype"
	"github.com/BarrerosLeo/wsl-clip-bridge/internal/policy"
	"github.com/BarrerosLeo/wsl-clip-bridge/internal/storage"
)

// 100 MB stdin ceiling when max_file_size_mb is not configured.
const defaultStdinLimit = 100 * 1024 * 1024

// Bridge runs clipboard transactions against the storage directory.
// Stdin and Stdout are parameters so tests can drive payloads through
// the same paths the process uses.
type Bridge struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// New returns a Bridge wired to the process streams.
func New() *Bridge {
	return &Bridge{Stdin: os.Stdin, Stdout: os.Stdout}
}

// Output serves the consumer side. An empty or TARGETS mime lists the
// available formats; otherwise the matching slot is streamed to stdout.
func (b *Bridge) Output(mime string) int {
	ttl := config.TTL()

	if mime == "" || mime == mimetype.TargetsSentinel {
		for _, t := range cache.Targets(ttl) {
			fmt.Fprintln(b.Stdout, t)
		}
		return 0
	}

	switch {
	case mimetype.IsText(mime):
		path := storage.TextPath()
		if !cache.Fresh(path, ttl) {
			cache.EvictText()
			return 1
		}
		return b.stream(path)

	case mimetype.IsImage(mime):
		path := storage.ImagePath()
		if !cache.Fresh(path, ttl) {
			cache.EvictImage()
			return 1
		}
		stored := cache.StoredFormat()
		if stored == "" || !mimetype.Matches(mime, stored) {
			// Fresh payload in a different format: unavailable for this
			// request, but still valid for its own, so no eviction.
			return 1
		}
		return b.stream(path)

	default:
		return 1
	}
}

func (b *Bridge) stream(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("read cached payload", "path", path, "err", err)
		return 1
	}
	if _, err := b.Stdout.Write(data); err != nil {
		return 1
	}
	return 0
}

// Input serves the producer side, ingesting a payload of the given MIME
// kind from file (when non-empty) or stdin.
//
// The config is loaded exactly once per transaction. On first use Load
// writes the default template and reports "no config": the just-written
// defaults must not apply to the invocation that created them, so the
// same (possibly nil) config feeds both the access policy and the
// ingestion options.
func (b *Bridge) Input(mime, file string) int {
	if err := storage.EnsureDir(); err != nil {
		slog.Error("storage unavailable", "err", err)
		return 1
	}

	cfg := config.Load()

	switch {
	case mimetype.IsText(mime):
		return b.inputText(cfg, file)
	case mimetype.IsImage(mime):
		return b.inputImage(cfg, mime, file)
	default:
		slog.Error("unsupported format: only text, PNG, JPEG, GIF, and WebP are supported",
			"mime", mime)
		return 1
	}
}

func (b *Bridge) inputText(cfg *config.BridgeConfig, file string) int {
	var data []byte
	var err error
	if file != "" {
		if code := checkAccess(file, cfg); code != 0 {
			return code
		}
		data, err = os.ReadFile(file)
	} else {
		data, err = io.ReadAll(b.Stdin)
	}
	if err != nil {
		slog.Error("read text payload", "err", err)
		return 1
	}

	path := storage.TextPath()
	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("write text slot", "err", err)
		return 1
	}
	_ = os.Chmod(path, 0o600)
	return 0
}

func (b *Bridge) inputImage(cfg *config.BridgeConfig, mime, file string) int {
	var data []byte
	var err error
	if file != "" {
		if code := checkAccess(file, cfg); code != 0 {
			return code
		}
		data, err = os.ReadFile(file)
	} else {
		data, err = readBounded(b.Stdin, stdinLimit(cfg))
	}
	if err != nil {
		slog.Error("read image payload", "err", err)
		return 1
	}

	maxDim := 0
	if cfg != nil && cfg.MaxImageDimension != nil {
		maxDim = *cfg.MaxImageDimension
	}
	data = imaging.Downscale(data, mime, maxDim)

	imagePath := storage.ImagePath()
	formatPath := storage.FormatPath()
	if err := os.WriteFile(imagePath, data, 0o600); err != nil {
		slog.Error("write image slot", "err", err)
		return 1
	}
	if err := os.WriteFile(formatPath, []byte(mimetype.Normalize(mime)), 0o600); err != nil {
		slog.Error("write format sidecar", "err", err)
		return 1
	}
	_ = os.Chmod(imagePath, 0o600)
	_ = os.Chmod(formatPath, 0o600)
	return 0
}

// checkAccess applies the validation policy to a producer-named file
// path. Returns 0 when ingestion may proceed.
func checkAccess(file string, cfg *config.BridgeConfig) int {
	if err := policy.Validate(file, cfg); err != nil {
		slog.Error("access denied", "path", file, "err", err)
		return 1
	}
	return 0
}

// stdinLimit resolves the byte ceiling for stdin image ingestion.
// An absent option means the 100 MB default; an explicit 0 disables the
// limit entirely.
func stdinLimit(cfg *config.BridgeConfig) int64 {
	if cfg == nil || cfg.MaxFileSizeMB == nil {
		return defaultStdinLimit
	}
	mb := *cfg.MaxFileSizeMB
	if mb <= 0 {
		return 0
	}
	// Saturate instead of overflowing: an absurd configured value must
	// not wrap negative and thereby disable the limit. MaxInt64-1 leaves
	// room for readBounded's one byte of slack.
	if mb > (math.MaxInt64-1)/(1024*1024) {
		return math.MaxInt64 - 1
	}
	return mb * 1024 * 1024
}

// readBounded buffers r fully, reading one byte past limit so that an
// over-limit payload is detected rather than silently truncated.
func readBounded(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("input exceeds maximum size of %dMB", limit/(1024*1024))
	}
	return data, nil
}
