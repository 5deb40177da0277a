// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests
// - 2026-10-19 v0.1.1: Stable field order

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	coreerror "github.com/msto63/isotime/foundation/core/error"
)

func fixedEntry() *Entry {
	e := NewEntry(LevelInfo, "parsed duration")
	e.Timestamp = time.Date(2026, 2, 25, 18, 21, 42, 0, time.UTC)
	e.Logger = "duration"
	e.Fields = Fields{"literal": "P1D", "days": 1}
	return e
}

func formatEntry(t *testing.T, f Formatter, e *Entry) string {
	t.Helper()
	out, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return string(out)
}

func TestTextFormatter(t *testing.T) {
	got := formatEntry(t, NewTextFormatter(), fixedEntry())
	want := "18:21:42 [INF] {duration} parsed duration [days=1 literal=P1D]\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatterWithError(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true
	e := fixedEntry()
	e.Fields = nil
	e.Error = errors.New("boom")

	got := formatEntry(t, f, e)
	want := "[INF] {duration} parsed duration error=\"boom\"\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()

	got := formatEntry(t, f, fixedEntry())
	if !strings.HasPrefix(got, LevelInfo.Color()) {
		t.Errorf("Format() = %q, want color prefix", got)
	}
	if !strings.HasSuffix(got, "\033[0m\n") {
		t.Errorf("Format() = %q, want color reset suffix", got)
	}

	f.DisableColors = true
	if got := formatEntry(t, f, fixedEntry()); strings.Contains(got, "\033[") {
		t.Errorf("Format() = %q, want no escape sequences", got)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	got := formatEntry(t, NewLogfmtFormatter(), fixedEntry())
	want := `timestamp=2026-02-25T18:21:42Z level=info message="parsed duration" logger=duration days=1 literal="P1D"` + "\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	e := fixedEntry()
	e.Error = coreerror.NewUnsupported("Posix format specifier %Q")

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(formatEntry(t, NewJSONFormatter(), e)), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	want := map[string]interface{}{
		"level":   "info",
		"message": "parsed duration",
		"literal": "P1D",
		"days":    float64(1),
		"error":   `"Posix format specifier %Q" not supported`,
	}
	for key, value := range want {
		if decoded[key] != value {
			t.Errorf("json[%s] = %v, want %v", key, decoded[key], value)
		}
	}

	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details = %v, want object", decoded["error_details"])
	}
	if details["code"] != "UNSUPPORTED" {
		t.Errorf("error_details.code = %v, want UNSUPPORTED", details["code"])
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("LOGFMT")
	if err != nil {
		t.Fatalf("ParseFormat() error = %v", err)
	}
	if f != FormatLogfmt || f.String() != "logfmt" {
		t.Errorf("ParseFormat(LOGFMT) = %v", f)
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}

	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return *JSONFormatter")
	}
	if _, ok := GetFormatter(Format(99)).(*TextFormatter); !ok {
		t.Error("GetFormatter(unknown) should fall back to *TextFormatter")
	}
}
