// ============================================================================
// mLox - Lox expression front end
// ============================================================================
//
// Package:     version
// Description: Central version management for all mLox components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for all mLox components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Scanner = "0.1.0"
	Parser  = "0.1.0"
	Engine  = "0.1.0"
	CLI     = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "scanner", "lox-scanner":
		return Scanner
	case "parser", "lox-parser":
		return Parser
	case "engine", "lox-engine":
		return Engine
	case "cli", "mlox":
		return CLI
	default:
		return Platform
	}
}

// Components lists the component names known to ComponentVersion
func Components() []string {
	return []string{"scanner", "parser", "engine", "cli"}
}
