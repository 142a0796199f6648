// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     version
// Description: Central version management for the binary and its parts
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Application version
	Application = "0.3.0"

	// Component versions
	Field     = "0.3.0"
	Format    = "0.3.0"
	Config    = "0.2.0"
	Interface = "0.2.0"
)

// Set at build time via -ldflags
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "field":
		return Field
	case "format":
		return Format
	case "config":
		return Config
	case "tui":
		return Interface
	default:
		return Application
	}
}

// Components lists the names ComponentVersion knows
func Components() []string {
	return []string{"field", "format", "config", "tui"}
}
