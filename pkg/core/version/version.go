// ============================================================================
// isotime - ISO 8601 durations and POSIX formats
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Module version
	Module = "0.2.0"

	// Component versions
	Timex   = "0.2.0"
	Datefmt = "0.1.0"
	CLI     = "0.2.0"
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "timex":
		return Timex
	case "datefmt":
		return Datefmt
	case "cli", "isotime":
		return CLI
	default:
		return Module
	}
}
