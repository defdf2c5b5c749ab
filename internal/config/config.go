// Package config loads the bridge's optional TOML configuration.
//
// Configuration is a pure function of the filesystem at call time: every
// invocation re-reads the file, nothing is memoized. A missing or
// unparseable config must never abort a clipboard operation; it only
// disables the options it would have set.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	subdir     = "wsl-clip-bridge"
	defaultTTL = 300 * time.Second
	ttlCeiling = 24 * time.Hour
)

// BridgeConfig holds the recognized options. Pointer fields distinguish
// "absent" from an explicit zero, which matters for max_file_size_mb
// (absent = 100 MB stdin default, 0 = limit disabled).
type BridgeConfig struct {
	TTLSecs            *uint64  `mapstructure:"ttl_secs"`
	MaxImageDimension  *int     `mapstructure:"max_image_dimension"`
	MaxFileSizeMB      *int64   `mapstructure:"max_file_size_mb"`
	RestrictToHome     *bool    `mapstructure:"restrict_to_home"`
	AllowedDirectories []string `mapstructure:"allowed_directories"`
}

// Path resolves the config file location.
//
// Precedence: WSL_CLIP_BRIDGE_CONFIG, then $XDG_CONFIG_HOME, then
// $HOME/.config, then a temp-dir fallback.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("WSL_CLIP_BRIDGE_CONFIG")); p != "" {
		return p
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, subdir, "config.toml")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", subdir, "config.toml")
	}
	return filepath.Join(os.TempDir(), subdir, "config.toml")
}

// Load reads the config file, returning nil when no usable config exists.
//
// On first use the commented default template is written to disk and nil
// is returned for the current invocation: the freshly written defaults
// are not read back.
func Load() *BridgeConfig {
	path := Path()
	if _, err := os.Stat(path); err != nil {
		writeDefault(path)
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil
	}
	var cfg BridgeConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil
	}
	return &cfg
}

// writeDefault creates the template config with owner-only permissions.
// Entirely best-effort: a read-only config dir must not break clipboard
// operations.
func writeDefault(path string) {
	if dir := filepath.Dir(path); dir != "" {
		_ = os.MkdirAll(dir, 0o700)
		_ = os.Chmod(dir, 0o700)
	}
	_ = os.WriteFile(path, []byte(defaultConfig), 0o600)
}

const defaultConfig = `# wsl-clip-bridge config

# TTL for primed data in seconds (default 300)
ttl_secs = 300

# Maximum image dimension in pixels (images larger will be downscaled)
# Recommended: 1568 keeps screenshots legible while bounding size
# Set to 0 to disable downscaling
max_image_dimension = 1568

# Security Settings

# Maximum file size in MB (default 100MB, 0 disables the limit)
max_file_size_mb = 100

# Restrict file access to home directory only (recommended)
restrict_to_home = true

# Optional: Only allow files from specific directories
# Uncomment and customize for ShareX-only mode:
# allowed_directories = [
#   "/mnt/c/Users/YOUR_USERNAME/Pictures/ShareX",
#   "/mnt/c/Users/YOUR_USERNAME/Documents/ShareX",
#   "/tmp"
# ]
`

// TTL resolves the cache time-to-live.
//
// Precedence: WSL_CLIP_BRIDGE_TTL_SECS env var, then ttl_secs from the
// config file, then the 300 second default. Both overrides are clamped
// to 24 hours.
func TTL() time.Duration {
	if v := strings.TrimSpace(os.Getenv("WSL_CLIP_BRIDGE_TTL_SECS")); v != "" {
		if secs, err := strconv.ParseUint(v, 10, 64); err == nil {
			return clampTTL(secs)
		}
	}
	if cfg := Load(); cfg != nil && cfg.TTLSecs != nil {
		return clampTTL(*cfg.TTLSecs)
	}
	return defaultTTL
}

func clampTTL(secs uint64) time.Duration {
	if secs > uint64(ttlCeiling/time.Second) {
		return ttlCeiling
	}
	return time.Duration(secs) * time.Second
}
