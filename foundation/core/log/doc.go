// Package log provides structured logging for the isotime tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent fields, text, JSON, console and
//              logfmt output, and integration with the structured error type
//              from foundation/core/error. Library packages do not log; the
//              command line tool configures a logger and passes it down.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.1.1: Trimmed to synchronous output for command line use
//
// Usage:
//
//	import corelog "github.com/msto63/isotime/foundation/core/log"
//
//	logger := corelog.New().
//		WithLevel(corelog.LevelDebug).
//		WithFormat(corelog.FormatLogfmt).
//		WithName("posix")
//
//	logger.Debug("translated format", corelog.Fields{
//		"posix":  "%d/%m/%Y",
//		"layout": "d/m/Y",
//	})
//	logger.LogError(err)
package log
