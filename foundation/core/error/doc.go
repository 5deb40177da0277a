// Package error provides structured error handling for isotime.
//
// Package: error
// Title: isotime Error Handling Framework
// Description: This package implements a structured error type with codes,
//              severity levels, details and stack traces. The time library
//              reports its two input failures through it: syntax errors in
//              duration literals and unsupported format specifiers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Grammar errors, code lookup through wrapped chains
//
// Usage:
//
//	import coreerror "github.com/msto63/isotime/foundation/core/error"
//
//	err := coreerror.NewSyntaxError("P0.5Y", 2, "not a supported ISO 8601 duration")
//	err.Error() // Syntax error in "P0.5Y" at offset 2 (".5Y"); not a supported ISO 8601 duration
//
//	if coreerror.HasCode(err, coreerror.CodeSyntaxError) {
//		offset, _ := err.Detail(coreerror.DetailAtOffset)
//		_ = offset
//	}
//
//	wrapped := coreerror.Wrap(err, "reading config").WithOperation("config.Load")
//	coreerror.GetCode(wrapped) // SYNTAX_ERROR
package error
