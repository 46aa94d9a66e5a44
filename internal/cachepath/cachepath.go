// Package cachepath resolves the on-disk locations internal/resolve and
// internal/hyper share: the global module packages directory, and the
// diagnostics trace/calibration files. It centralizes the XDG-style
// resolution the teacher inlines into driver.OpenDiskCache (base dir via
// XDG_CACHE_HOME/UserHomeDir, joined with an app name, created on demand)
// generalized to os.UserConfigDir since these are configuration-adjacent
// artifacts rather than rebuildable caches.
package cachepath

import (
	"os"
	"path/filepath"
)

const appName = "snask"

// Dir joins the user config directory with "snask" and the given path
// segments, creating every directory on the path. Callers that only need
// the path (not the directory to exist yet, e.g. to check mtimes) can
// still rely on the result being absolute.
func Dir(segments ...string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{base, appName}, segments...)
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// File resolves a file path under Dir(segments...), without creating the
// file itself.
func File(name string, segments ...string) (string, error) {
	dir, err := Dir(segments...)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnvOrDir returns the value of envVar if set, else falls back to
// Dir(segments...). Used for PackagesDir's SNASK_PACKAGES_DIR override.
func EnvOrDir(envVar string, segments ...string) (string, error) {
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	return Dir(segments...)
}
