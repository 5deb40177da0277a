// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across isotime. Codes classify
//              errors for CLI exit handling and structured log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to the isotime code set, added syntax and unsupported codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Grammar and translation
	CodeSyntaxError Code = "SYNTAX_ERROR"
	CodeUnsupported Code = "UNSUPPORTED"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeSyntaxError, CodeUnsupported,
		CodeConfigError, CodeMissingConfig, CodeEnvironmentError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntaxError, CodeUnsupported, CodeInvalidInput:
		return "input"
	case CodeConfigError, CodeMissingConfig, CodeEnvironmentError:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
