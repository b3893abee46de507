// Package configloader provides configuration loading and resolution:
// discovery of config files, hierarchical merging, and environment
// variable overrides.
package configloader

import (
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
// Missing files are represented as empty strings.
type ConfigPaths struct {
	// User is the user-level config path
	// (e.g. ~/.config/treewatcher/config.yaml).
	User string

	// Project is the project-level config path
	// (e.g. ./.treewatcher.yml), found by searching upward from the
	// working directory.
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order
// of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".treewatcher.yml",
	".treewatcher.yaml",
	"treewatcher.yml",
	"treewatcher.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root, bounding the
// upward search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
func DiscoverPaths(workDir string) *ConfigPaths {
	return &ConfigPaths{
		User:    findUserConfig(),
		Project: findProjectConfig(workDir),
	}
}

func findUserConfig() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}

	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(configDir, "treewatcher", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// findProjectConfig searches upward from workDir for a project config,
// stopping at a VCS root or the filesystem root.
func findProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
