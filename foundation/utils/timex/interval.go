// File: interval.go
// Title: Interval Components
// Description: Plain component struct behind Duration and the computation of
//              the elapsed interval between two instants.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"math"
	"time"

	"github.com/rickb777/date/v2"

	coreerror "github.com/msto63/isotime/foundation/core/error"
)

// Interval holds the fields of a duration exactly as written, without
// carrying between units. Magnitudes are never negative; the sign is kept
// in Negative.
//
// TotalDays is the collapsed day count used when a duration is expressed in
// days only. When it is positive, Years, Months and Days are ignored.
type Interval struct {
	Negative bool

	Years     int
	Months    int
	Days      int
	TotalDays int

	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int
}

// validate checks the magnitude and range rules of an interval
func (iv Interval) validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"years", iv.Years},
		{"months", iv.Months},
		{"days", iv.Days},
		{"total_days", iv.TotalDays},
		{"hours", iv.Hours},
		{"minutes", iv.Minutes},
		{"seconds", iv.Seconds},
		{"microseconds", iv.Microseconds},
	}

	for _, f := range fields {
		if f.value < 0 {
			return coreerror.Newf("interval field %s must not be negative", f.name).
				WithCode(coreerror.CodeInvalidInput).
				WithDetail("field", f.name).
				WithDetail("value", f.value)
		}
	}

	if iv.Microseconds >= microsPerSecond {
		return coreerror.Newf("interval microseconds must be below %d", microsPerSecond).
			WithCode(coreerror.CodeInvalidInput).
			WithDetail("field", "microseconds").
			WithDetail("value", iv.Microseconds)
	}

	if _, ok := iv.collapse().wholeSeconds(); !ok {
		return coreerror.Newf("interval exceeds %d seconds", maxWholeSeconds).
			WithCode(coreerror.CodeInvalidInput).
			WithDetail("field", "interval")
	}

	return nil
}

// maxWholeSeconds is the largest length in whole seconds whose microsecond
// count still fits an int64
const maxWholeSeconds = (math.MaxInt64 - (microsPerSecond - 1)) / microsPerSecond

// dayCount returns the day-scale length of iv with 365-day years and
// 30-day months. ok is false on int64 overflow.
func (iv Interval) dayCount() (int64, bool) {
	if iv.TotalDays > 0 {
		return int64(iv.TotalDays), true
	}

	days, ok := mulAdd(int64(iv.Years), daysPerYear, int64(iv.Days))
	if !ok {
		return 0, false
	}
	return mulAdd(int64(iv.Months), daysPerMonth, days)
}

// wholeSeconds returns the length of iv in whole seconds. ok is false when
// it exceeds maxWholeSeconds.
func (iv Interval) wholeSeconds() (int64, bool) {
	total, ok := iv.dayCount()
	if !ok {
		return 0, false
	}

	steps := []struct{ factor, add int64 }{
		{24, int64(iv.Hours)},
		{60, int64(iv.Minutes)},
		{60, int64(iv.Seconds)},
	}
	for _, step := range steps {
		if total, ok = mulAdd(total, step.factor, step.add); !ok {
			return 0, false
		}
	}

	return total, total <= maxWholeSeconds
}

// mulAdd returns a*factor+add for non-negative operands
func mulAdd(a, factor, add int64) (int64, bool) {
	if a > (math.MaxInt64-add)/factor {
		return 0, false
	}
	return a*factor + add, true
}

// collapse makes TotalDays the only day-scale field when it is set
func (iv Interval) collapse() Interval {
	if iv.TotalDays > 0 {
		iv.Years, iv.Months, iv.Days = 0, 0, 0
	}
	return iv
}

func (iv Interval) isZero() bool {
	return iv.Years == 0 && iv.Months == 0 && iv.Days == 0 && iv.TotalDays == 0 &&
		iv.Hours == 0 && iv.Minutes == 0 && iv.Seconds == 0 && iv.Microseconds == 0
}

// Between returns the elapsed time from one instant to another as whole
// calendar days plus a clock remainder. Both instants are compared in UTC.
// The result is negative when to lies before from.
func Between(from, to time.Time) Duration {
	from, to = from.UTC(), to.UTC()

	negative := to.Before(from)
	if negative {
		from, to = to, from
	}

	days := int(date.NewAt(to) - date.NewAt(from))
	clock := timeOfDay(to) - timeOfDay(from)
	if clock < 0 {
		days--
		clock += 24 * time.Hour
	}

	iv := Interval{
		Negative:     negative,
		TotalDays:    days,
		Hours:        int(clock / time.Hour),
		Minutes:      int(clock % time.Hour / time.Minute),
		Seconds:      int(clock % time.Minute / time.Second),
		Microseconds: int(clock % time.Second / time.Microsecond),
	}
	if iv.isZero() {
		iv.Negative = false
	}

	return Duration{iv: iv}
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
