// File: grammar.go
// Title: Grammar and Feature Errors
// Description: Constructors for the two input failures of the time library:
//              a literal that does not follow the supported grammar, and a
//              feature (such as a format specifier) that is not supported.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

import (
	"fmt"
	"unicode/utf8"
)

// Detail keys set by NewSyntaxError and NewUnsupported
const (
	DetailInData       = "in_data"
	DetailAtOffset     = "at_offset"
	DetailExtraMessage = "extra_message"
	DetailFeature      = "feature"
)

// syntaxContextLen is the number of characters quoted after the offset
const syntaxContextLen = 10

// NewSyntaxError reports that inData is malformed starting at byte offset atOffset.
//
//	Syntax error in "P0.5Y" at offset 2 (".5Y"); not a supported ISO 8601 duration
func NewSyntaxError(inData string, atOffset int, extraMessage string) *Error {
	if atOffset < 0 {
		atOffset = 0
	}
	if atOffset > len(inData) {
		atOffset = len(inData)
	}

	msg := fmt.Sprintf("Syntax error in %q at offset %d (%q)", inData, atOffset, syntaxContext(inData[atOffset:]))
	if extraMessage != "" {
		msg += "; " + extraMessage
	}

	e := New(msg).
		WithCode(CodeSyntaxError).
		WithDetail(DetailInData, inData).
		WithDetail(DetailAtOffset, atOffset).
		WithDetail(DetailExtraMessage, extraMessage)
	e.stackTrace = captureStackTrace(2)
	return e
}

// NewUnsupported reports that feature is not supported.
//
//	"Posix format specifier %j" not supported
func NewUnsupported(feature string) *Error {
	e := New(fmt.Sprintf("%q not supported", feature)).
		WithCode(CodeUnsupported).
		WithDetail(DetailFeature, feature)
	e.stackTrace = captureStackTrace(2)
	return e
}

func syntaxContext(rest string) string {
	if utf8.RuneCountInString(rest) <= syntaxContextLen {
		return rest
	}
	runes := []rune(rest)
	return string(runes[:syntaxContextLen]) + "..."
}
