// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger
//              can tell user mistakes from broken environments.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.1.1: Code mapping follows the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected input; nothing is broken
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that has a workaround
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable configuration
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical
	case CodeConfigError, CodeInternal:
		return SeverityHigh
	case CodeSyntaxError, CodeUnsupported, CodeInvalidInput, CodeMissingConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
