// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config provides the typed mLox configuration with
//              TOML and YAML loading, defaults, discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed configuration for the Lox front end

/*
Package config provides configuration management for mLox.

Key Features:
  - TOML and YAML files with format detection by extension
  - Defaults for every value; a file only needs the keys it changes
  - Discovery through MLOX_CONFIG and default search paths
  - Validation reporting all violations as one INVALID_CONFIG error

# Loading

	cfg, err := mlxconfig.Load("mlox.toml")
	if err != nil {
		return err
	}
	fmt.Println(cfg.Parser.MaxDepth)

A minimal TOML file:

	[general]
	log_level = "debug"

	[scanner]
	error_policy = "collect"
	max_errors = 10

	[output]
	format = "yaml"

# Discovery

LoadFromEnv reads the path in MLOX_CONFIG. Without it, the first existing
entry of DefaultSearchPaths is used, and without any file the defaults
from Default are returned.
*/
package config
