// Package paths provides centralized path handling for hoist.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for hoist
	EnvConfigDir = "HOIST_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define hoist's on-disk layout and are NOT
// user-configurable. They must remain consistent across installations.
const (
	// HoistDirName is the directory name for hoist-specific files
	HoistDirName = "hoist"

	// SettingsFile holds global settings: remote host, user, repo roots
	SettingsFile = "config.json"

	// ReposFile holds per-repository rules, variables, and hooks
	ReposFile = "repos.json"

	// ThemeFile is the optional output theme override
	ThemeFile = "theme.yaml"

	// LogFileName is the name of the log file
	LogFileName = "hoist.log"
)

// Paths provides centralized path management for hoist
type Paths interface {
	ConfigDir() string
	StateDir() string
	SettingsPath() string
	ReposPath() string
	ThemePath() string
	LogFilePath() string
}

type paths struct {
	// configDir holds config.json, repos.json, and the optional theme
	configDir string

	// stateDir holds the log file
	stateDir string
}

// New creates a new Paths instance, respecting environment overrides.
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = ExpandHome(configDir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, HoistDirName)
	}

	// XDG state is read from the environment directly so tests can
	// redirect it without reinitializing the xdg package.
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.stateDir = filepath.Join(stateDir, HoistDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.stateDir = filepath.Join(homeDir, ".local", "state", HoistDirName)
	}

	return p
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ConfigDir returns the directory holding hoist's configuration files
func (p *paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the directory for state files
func (p *paths) StateDir() string {
	return p.stateDir
}

// SettingsPath returns the path to the global settings file
func (p *paths) SettingsPath() string {
	return filepath.Join(p.configDir, SettingsFile)
}

// ReposPath returns the path to the repository configuration file
func (p *paths) ReposPath() string {
	return filepath.Join(p.configDir, ReposFile)
}

// ThemePath returns the path to the optional theme override
func (p *paths) ThemePath() string {
	return filepath.Join(p.configDir, ThemeFile)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
