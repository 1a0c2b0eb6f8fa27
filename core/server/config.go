package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"serve-web/core/ports"
	"serve-web/core/utils"
)

const (
	// DefaultPort is the preferred port when none (or garbage) is configured.
	DefaultPort = 8000
	// DefaultRootName is the directory served when no root is configured,
	// resolved next to the executable.
	DefaultRootName = "web"
	// LandingPage is the page opened in the browser on startup.
	LandingPage = "index.html"
)

// ErrRootNotFound is returned when the root directory is missing or not a directory.
var ErrRootNotFound = errors.New("web directory not found")

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the preferred port to start scanning from.
	Port string `mapstructure:"port" default:"8000"`
	// Root is the directory to serve. Empty means the web directory next to the executable.
	Root string `mapstructure:"root" default:""`
	// MaxPortAttempts is how many consecutive ports are probed.
	MaxPortAttempts int `mapstructure:"max_port_attempts" default:"20"`
	// OpenBrowser opens the landing page in the default browser on startup.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
}

// PreferredPort returns the configured port, or DefaultPort if it does not parse.
func (c Config) PreferredPort() int {
	return utils.ToIntOr(c.Port, DefaultPort)
}

// PortAttempts returns MaxPortAttempts, or ports.DefaultMaxTries if unset.
func (c Config) PortAttempts() int {
	if c.MaxPortAttempts <= 0 {
		return ports.DefaultMaxTries
	}
	return c.MaxPortAttempts
}

// ResolveRoot returns the absolute root directory and checks that it exists.
func (c Config) ResolveRoot() (string, error) {
	root := c.Root
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("failed to locate executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		root = filepath.Join(filepath.Dir(exe), DefaultRootName)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, abs)
	}

	return abs, nil
}
