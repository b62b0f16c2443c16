// Package paths resolves configuration directory locations for unitconv.
// Implements: prd005-unitconv-cli (R9: config directory resolution).
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDirName is the CWD-relative configuration directory used
// when no override is active.
const DefaultConfigDirName = ".quanta"

// EnvConfigDir is the environment variable overriding the config directory.
const EnvConfigDir = "QUANTA_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/quanta (fallback ~/.config/quanta)
// macOS:   ~/Library/Application Support/quanta
// Windows: %APPDATA%/quanta
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "quanta"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "quanta"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "quanta"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > QUANTA_CONFIG_DIR env > $(CWD)/.quanta.
//
// The CWD-relative default keeps per-project configuration the primary mode
// when no override is active; DefaultConfigDir is for callers that want a
// per-user location instead.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}
