// Package timex provides ISO 8601 durations with fractional seconds and the
// translation of POSIX strftime formats.
//
// Package: timex
// Title: ISO 8601 Durations and POSIX Formats
// Description: Duration keeps the fields of an ISO 8601 literal as written,
//              including a microsecond fraction on the seconds, and writes
//              the shortest equivalent literal back. Totals treat a year as
//              365 days and a month as 30 days. PosixFormat translates a
//              strftime format into a datefmt layout plus a shape string
//              that reveals whether every rendering has the same length.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial time utilities
// - 2026-10-19 v0.2.0: ISO 8601 durations, POSIX format translation
//
// Usage:
//
//	d, err := timex.ParseDuration("P1Y2M3DT4H5M6.78912S")
//	if err != nil {
//		return err
//	}
//	fmt.Println(d, d.TotalSeconds()) // P1Y2M3DT4H5M6.78912S 3.699390678912e+07
//
//	f, err := timex.NewPosixFormat("%F %T")
//	if err != nil {
//		return err
//	}
//	n, _ := f.Length()
//	fmt.Println(f.Format(time.Now()), f.Shape(), n) // ... YYYY-MM-DD HH:MM:SS 19
package timex
