// Package datefmt renders time values using a letter based layout.
//
// Package: datefmt
// Title: Letter Layout Date Formatting
// Description: A small formatting engine where every layout letter names a
//              field (d = day, m = month, Y = year, W = ISO week, ...) and a
//              backslash escapes the next character. Unlike the reference
//              time layout of the time package it can express ISO week
//              numbers, ISO weekdays and the ISO week-numbering year.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	s := datefmt.Format(time.Now(), `Y-m-d\TH:i:sP`)
//	s = datefmt.Time(t).Render("l, j F Y")
package datefmt
