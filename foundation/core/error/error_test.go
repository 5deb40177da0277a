// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              grammar error constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Grammar errors and code lookup through wrapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("original").WithCode(CodeConfigError),
			message: "wrapper message",
			wantMsg: "wrapper message: original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}

			if inner, ok := tt.err.(*Error); ok && wrapped.Code() != inner.Code() {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want Severity
	}{
		{"syntax", New("x").WithCode(CodeSyntaxError), SeverityLow},
		{"config", New("x").WithCode(CodeConfigError), SeverityHigh},
		{"explicit severity wins", New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntaxError), SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetails(t *testing.T) {
	err := New("x").WithDetail("a", 1).WithDetails(map[string]interface{}{"b": "two"})

	details := err.Details()
	if details["a"] != 1 || details["b"] != "two" {
		t.Errorf("Details() = %v", details)
	}

	details["a"] = 99
	if v, ok := err.Detail("a"); !ok || v != 1 {
		t.Errorf("Detail(a) = %v, %v; Details must return a copy", v, ok)
	}
}

func TestNewSyntaxError(t *testing.T) {
	err := NewSyntaxError("P0.5Y", 2, "not a supported ISO 8601 duration")

	want := `Syntax error in "P0.5Y" at offset 2 (".5Y"); not a supported ISO 8601 duration`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if err.Code() != CodeSyntaxError {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeSyntaxError)
	}

	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}

	offset, ok := err.Detail(DetailAtOffset)
	if !ok {
		t.Fatalf("Detail(%s) missing", DetailAtOffset)
	}
	if offset != 2 {
		t.Errorf("Detail(%s) = %v, want 2", DetailAtOffset, offset)
	}

	if inData, _ := err.Detail(DetailInData); inData != "P0.5Y" {
		t.Errorf("Detail(%s) = %v, want P0.5Y", DetailInData, inData)
	}
}

func TestNewSyntaxErrorContext(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		offset int
		want   string
	}{
		{"truncated context", "P1Y2M3DT4H5M6.7Sx", 0, `Syntax error in "P1Y2M3DT4H5M6.7Sx" at offset 0 ("P1Y2M3DT4H...")`},
		{"offset past end", "PT", 7, `Syntax error in "PT" at offset 2 ("")`},
		{"negative offset", "PT", -1, `Syntax error in "PT" at offset 0 ("PT")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSyntaxError(tt.in, tt.offset, "").Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewUnsupported(t *testing.T) {
	err := NewUnsupported("Posix format specifier %j")

	want := `"Posix format specifier %j" not supported`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if err.Code() != CodeUnsupported {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnsupported)
	}

	if feature, _ := err.Detail(DetailFeature); feature != "Posix format specifier %j" {
		t.Errorf("Detail(%s) = %v", DetailFeature, feature)
	}
}

func TestCodeLookupThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("translating: %w", NewUnsupported("x"))
	plain := errors.New("plain")

	if !HasCode(wrapped, CodeUnsupported) {
		t.Error("HasCode() should find the code through wrapping")
	}
	if HasCode(wrapped, CodeSyntaxError) {
		t.Error("HasCode() matched a foreign code")
	}
	if HasCode(plain, CodeUnsupported) {
		t.Error("HasCode() matched a plain error")
	}

	if got := GetCode(wrapped); got != CodeUnsupported {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnsupported)
	}
	if got := GetCode(plain); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}

	if got := GetSeverity(wrapped); got != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityLow)
	}
	if got := GetSeverity(nil); got != SeverityMedium {
		t.Errorf("GetSeverity(nil) = %v, want %v", got, SeverityMedium)
	}
}

func TestCodes(t *testing.T) {
	if !CodeSyntaxError.IsValid() {
		t.Error("CodeSyntaxError should be valid")
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}

	categories := map[Code]string{
		CodeUnsupported:   "input",
		CodeMissingConfig: "configuration",
	}
	for code, want := range categories {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", code, got, want)
		}
	}

	exitCodes := map[Code]int{
		CodeSyntaxError: 2,
		CodeConfigError: 3,
		CodeInternal:    1,
	}
	for code, want := range exitCodes {
		if got := code.ExitCode(); got != want {
			t.Errorf("%s.ExitCode() = %d, want %d", code, got, want)
		}
	}
}

func TestStringAndJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "outer").
		WithCode(CodeInvalidInput).
		WithOperation("timex.FromInterval").
		WithDetail("field", "microseconds")

	s := err.String()
	for _, want := range []string{
		"Error: outer",
		"Code: INVALID_INPUT",
		"Operation: timex.FromInterval",
		"Details: {field=microseconds}",
		"Cause: root",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if uerr := json.Unmarshal(data, &decoded); uerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uerr)
	}

	want := map[string]string{
		"message":  "outer",
		"code":     "INVALID_INPUT",
		"severity": "low",
		"cause":    "root",
	}
	for key, value := range want {
		if decoded[key] != value {
			t.Errorf("json[%s] = %v, want %q", key, decoded[key], value)
		}
	}
}

func BenchmarkNewSyntaxError(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewSyntaxError("P0.5Y", 2, "not a supported ISO 8601 duration")
	}
}
