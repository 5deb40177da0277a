// File: datefmt.go
// Title: Letter Layout Formatting
// Description: Renders time values with a letter based layout in which each
//              ASCII letter stands for one date or time field and a backslash
//              escapes the following character. This is the host layout that
//              POSIX format strings are translated into.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package datefmt

import (
	"strconv"
	"strings"
	"time"
)

// Renderer renders a layout into text
type Renderer interface {
	Render(layout string) string
}

// Time adapts a time.Time to the Renderer interface
type Time time.Time

// Render formats t with the given letter layout
func (t Time) Render(layout string) string {
	return Format(time.Time(t), layout)
}

// Format renders t according to layout.
//
// Supported letters:
//
//	d  day of month, 2 digits         D  weekday, 3 letters
//	j  day of month                   l  weekday, full name
//	N  ISO weekday, 1 (Mon) to 7      w  weekday, 0 (Sun) to 6
//	z  day of year from 0             W  ISO week number, 2 digits
//	F  month, full name               M  month, 3 letters
//	m  month, 2 digits                n  month
//	o  ISO week-numbering year        Y  year, at least 4 digits
//	y  year, 2 digits                 a  am or pm
//	A  AM or PM                       g  hour, 12-hour clock
//	G  hour, 24-hour clock            h  hour, 12-hour clock, 2 digits
//	H  hour, 24-hour clock, 2 digits  i  minutes, 2 digits
//	s  seconds, 2 digits              u  microseconds, 6 digits
//	v  milliseconds, 3 digits         U  seconds since the Unix epoch
//	O  UTC offset, +hhmm              P  UTC offset, +hh:mm
//	T  zone abbreviation              e  zone identifier
//
// A backslash makes the next character literal. Any other character,
// including letters not listed above, is copied unchanged.
func Format(t time.Time, layout string) string {
	var b strings.Builder
	b.Grow(len(layout) * 2)

	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
			continue
		}
		if !appendField(&b, t, r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsField reports whether r is a layout letter with a meaning
func IsField(r rune) bool {
	return strings.ContainsRune(fieldLetters, r)
}

const fieldLetters = "dDjlNwzWFMmnoYyaAgGhHisuvUOPTe"

func appendField(b *strings.Builder, t time.Time, r rune) bool {
	switch r {
	// day
	case 'd':
		pad2(b, t.Day())
	case 'D':
		b.WriteString(t.Weekday().String()[:3])
	case 'j':
		b.WriteString(strconv.Itoa(t.Day()))
	case 'l':
		b.WriteString(t.Weekday().String())
	case 'N':
		b.WriteString(strconv.Itoa(isoWeekday(t)))
	case 'w':
		b.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'z':
		b.WriteString(strconv.Itoa(t.YearDay() - 1))

	// week
	case 'W':
		_, week := t.ISOWeek()
		pad2(b, week)

	// month
	case 'F':
		b.WriteString(t.Month().String())
	case 'M':
		b.WriteString(t.Month().String()[:3])
	case 'm':
		pad2(b, int(t.Month()))
	case 'n':
		b.WriteString(strconv.Itoa(int(t.Month())))

	// year
	case 'o':
		year, _ := t.ISOWeek()
		writeYear(b, year)
	case 'Y':
		writeYear(b, t.Year())
	case 'y':
		pad2(b, abs(t.Year())%100)

	// time
	case 'a':
		if t.Hour() < 12 {
			b.WriteString("am")
		} else {
			b.WriteString("pm")
		}
	case 'A':
		if t.Hour() < 12 {
			b.WriteString("AM")
		} else {
			b.WriteString("PM")
		}
	case 'g':
		b.WriteString(strconv.Itoa(hour12(t)))
	case 'G':
		b.WriteString(strconv.Itoa(t.Hour()))
	case 'h':
		pad2(b, hour12(t))
	case 'H':
		pad2(b, t.Hour())
	case 'i':
		pad2(b, t.Minute())
	case 's':
		pad2(b, t.Second())
	case 'u':
		padN(b, t.Nanosecond()/1000, 6)
	case 'v':
		padN(b, t.Nanosecond()/1_000_000, 3)
	case 'U':
		b.WriteString(strconv.FormatInt(t.Unix(), 10))

	// timezone
	case 'O':
		b.WriteString(t.Format("-0700"))
	case 'P':
		b.WriteString(t.Format("-07:00"))
	case 'T':
		b.WriteString(t.Format("MST"))
	case 'e':
		b.WriteString(t.Location().String())

	default:
		return false
	}
	return true
}

func isoWeekday(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func writeYear(b *strings.Builder, year int) {
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	padN(b, year, 4)
}

func pad2(b *strings.Builder, n int) {
	padN(b, n, 2)
}

func padN(b *strings.Builder, n, width int) {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
