// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the configuration file through the MLOX_CONFIG
//              environment variable or a list of default search paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of config discovery
// - 2026-10-19 v0.2.0: Single MLOX_CONFIG variable, fallback to defaults

package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "MLOX_CONFIG"

// DefaultSearchPaths returns the locations checked when no path is given
func DefaultSearchPaths() []string {
	paths := []string{
		"./mlox.toml",
		"./mlox.yaml",
		"./configs/mlox.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "mlox", "config.toml"),
			filepath.Join(home, ".config", "mlox", "config.yaml"),
		)
	}
	return paths
}

// FindConfigFile returns the first existing file among paths, or "" if none exists
func FindConfigFile(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadFromEnv loads the file named by MLOX_CONFIG, then the first default
// search path that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	if path := FindConfigFile(DefaultSearchPaths()); path != "" {
		return Load(path)
	}

	return Default(), nil
}

// LoadOrDefault loads an explicit path when given, otherwise behaves like LoadFromEnv
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	return LoadFromEnv()
}
