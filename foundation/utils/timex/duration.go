// File: duration.go
// Title: ISO 8601 Duration
// Description: Immutable ISO 8601 duration with microsecond fractional
//              seconds. Parses literals such as P1Y2M3DT4H5M6.78912S,
//              serializes to the minimal literal and converts to totals
//              with 365-day years and 30-day months.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Duration helpers on top of time.Duration
// - 2026-10-19 v0.2.0: Replaced by an ISO 8601 duration value with fractional seconds

package timex

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/period"

	coreerror "github.com/msto63/isotime/foundation/core/error"
)

const (
	daysPerYear     = 365
	daysPerMonth    = 30
	microsPerSecond = 1_000_000
	fractionDigits  = 6

	notISODuration = "not a supported ISO 8601 duration"
)

// maxField is the largest value any single field may carry
var maxField = decimal.MustNew(maxWholeSeconds, 0)

// fractionTail is what may follow the decimal point of a literal
var fractionTail = regexp.MustCompile(`^[0-9]*S$`)

// Duration is an ISO 8601 duration that keeps the fields of its literal.
// The zero value is the zero duration.
type Duration struct {
	iv Interval
}

// ParseDuration parses an ISO 8601 duration literal. A decimal point is
// allowed in the seconds field only:
//
//	P1Y2M3DT4H5M6.78912S
//	-PT.5S
//	P100D
//
// Fractions are kept to microsecond resolution; further digits are dropped.
func ParseDuration(s string) (Duration, error) {
	if s == "" {
		return Duration{}, coreerror.NewSyntaxError(s, 0, notISODuration).WithOperation("ParseDuration")
	}

	pre, post, hasFraction := strings.Cut(s, ".")
	if !hasFraction {
		p, err := period.Parse(s)
		if err != nil {
			return Duration{}, delegateError(s, err)
		}
		return fromPeriod(s, p, 0, false)
	}

	if !fractionTail.MatchString(post) {
		return Duration{}, coreerror.NewSyntaxError(s, len(pre), notISODuration).WithOperation("ParseDuration")
	}

	p, err := period.Parse(integerLiteral(pre))
	if err != nil {
		return Duration{}, delegateError(s, err)
	}

	return fromPeriod(s, p, parseMicros(strings.TrimSuffix(post, "S")), strings.HasPrefix(s, "-"))
}

// MustParseDuration is like ParseDuration but panics on error.
// It is intended for literals in setup code.
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromInterval builds a duration from interval components.
// A positive TotalDays replaces the years, months and days.
func FromInterval(iv Interval) (Duration, error) {
	if err := iv.validate(); err != nil {
		return Duration{}, err
	}

	iv = iv.collapse()
	if iv.isZero() {
		iv.Negative = false
	}
	return Duration{iv: iv}, nil
}

// integerLiteral turns the text before the decimal point into a literal the
// integer parser accepts. The seconds digits are kept unless they are all
// zero, in which case the seconds field is dropped.
func integerLiteral(pre string) string {
	trimmed := strings.TrimRight(pre, "0")
	if n := len(trimmed); n > 0 && trimmed[n-1] >= '1' && trimmed[n-1] <= '9' {
		return pre + "S"
	}

	sign, body := splitSign(trimmed)
	if body == "PT" {
		return sign + "P0D"
	}
	return strings.TrimSuffix(trimmed, "T")
}

func splitSign(s string) (string, string) {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return s[:1], s[1:]
	}
	return "", s
}

func parseMicros(digits string) int {
	if len(digits) > fractionDigits {
		digits = digits[:fractionDigits]
	}
	digits += strings.Repeat("0", fractionDigits-len(digits))

	n, _ := strconv.Atoi(digits)
	return n
}

func delegateError(s string, err error) *coreerror.Error {
	return coreerror.NewSyntaxError(s, 0, notISODuration).
		WithCause(err).
		WithOperation("ParseDuration")
}

// fromPeriod copies the whole-number fields of p. Fractions and fields with
// a sign differing from the overall sign are rejected. signed marks a
// literal with a leading minus whose integer part may have parsed as zero.
func fromPeriod(s string, p period.Period, micros int, signed bool) (Duration, error) {
	abs := p.Abs()

	fields := []decimal.Decimal{
		abs.YearsDecimal(), abs.MonthsDecimal(), abs.WeeksDecimal(), abs.DaysDecimal(),
		abs.HoursDecimal(), abs.MinutesDecimal(), abs.SecondsDecimal(),
	}
	for _, f := range fields {
		if !f.IsInt() {
			return Duration{}, coreerror.NewSyntaxError(s, 0, notISODuration+"; only seconds may have a fraction").
				WithOperation("ParseDuration")
		}
		if f.Sign() < 0 {
			return Duration{}, coreerror.NewSyntaxError(s, 0, notISODuration+"; fields must share one sign").
				WithOperation("ParseDuration")
		}
		if f.Cmp(maxField) > 0 {
			return Duration{}, outOfRange(s)
		}
	}

	iv := Interval{
		Negative:     p.IsNegative() || (p.IsZero() && signed),
		Hours:        abs.Hours(),
		Minutes:      abs.Minutes(),
		Seconds:      abs.Seconds(),
		Microseconds: micros,
	}

	days := abs.DaysIncWeeks()
	if abs.Years() == 0 && abs.Months() == 0 {
		iv.TotalDays = days
	} else {
		iv.Years, iv.Months, iv.Days = abs.Years(), abs.Months(), days
	}

	if _, ok := iv.wholeSeconds(); !ok {
		return Duration{}, outOfRange(s)
	}

	if iv.isZero() {
		iv.Negative = false
	}
	return Duration{iv: iv}, nil
}

func outOfRange(s string) *coreerror.Error {
	return coreerror.NewSyntaxError(s, 0, notISODuration+"; value out of range").
		WithOperation("ParseDuration").
		WithDetail("max_seconds", int64(maxWholeSeconds))
}

// Interval returns the components of d
func (d Duration) Interval() Interval {
	return d.iv
}

// Sign returns -1, 0 or 1
func (d Duration) Sign() int {
	switch {
	case d.iv.isZero():
		return 0
	case d.iv.Negative:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether every field of d is zero
func (d Duration) IsZero() bool {
	return d.iv.isZero()
}

// Fraction returns the fractional second in [0, 1)
func (d Duration) Fraction() float64 {
	return float64(d.iv.Microseconds) / microsPerSecond
}

// String returns the shortest literal for d. Zero fields are omitted and
// the zero duration is P0D.
func (d Duration) String() string {
	iv := d.iv

	var datePart strings.Builder
	if iv.TotalDays > 0 {
		writeField(&datePart, iv.TotalDays, 'D')
	} else {
		writeField(&datePart, iv.Years, 'Y')
		writeField(&datePart, iv.Months, 'M')
		writeField(&datePart, iv.Days, 'D')
	}

	var timePart strings.Builder
	writeField(&timePart, iv.Hours, 'H')
	writeField(&timePart, iv.Minutes, 'M')
	if iv.Seconds != 0 || iv.Microseconds != 0 {
		timePart.WriteString(strconv.Itoa(iv.Seconds))
		if iv.Microseconds != 0 {
			frac := strconv.Itoa(iv.Microseconds)
			frac = strings.Repeat("0", fractionDigits-len(frac)) + frac
			timePart.WriteByte('.')
			timePart.WriteString(strings.TrimRight(frac, "0"))
		}
		timePart.WriteByte('S')
	}

	if datePart.Len() == 0 && timePart.Len() == 0 {
		return "P0D"
	}

	var b strings.Builder
	if iv.Negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	b.WriteString(datePart.String())
	if timePart.Len() > 0 {
		b.WriteByte('T')
		b.WriteString(timePart.String())
	}
	return b.String()
}

func writeField(b *strings.Builder, value int, designator byte) {
	if value == 0 {
		return
	}
	b.WriteString(strconv.Itoa(value))
	b.WriteByte(designator)
}

func (d Duration) sign() int {
	if d.iv.Negative {
		return -1
	}
	return 1
}

// ParseDuration and FromInterval bound the interval by maxWholeSeconds,
// so days and minutes fit an int64.
func (d Duration) days() int64 {
	n, _ := d.iv.dayCount()
	return n
}

func (d Duration) minutes() int64 {
	return (d.days()*24+int64(d.iv.Hours))*60 + int64(d.iv.Minutes)
}

// TotalDays returns the length of d in days, counting a year as 365 days
// and a month as 30 days
func (d Duration) TotalDays() int {
	return d.sign() * int(d.days())
}

// TotalHours returns TotalDays*24 plus the hours field
func (d Duration) TotalHours() int {
	return d.sign() * int(d.days()*24+int64(d.iv.Hours))
}

// TotalMinutes returns TotalHours*60 plus the minutes field
func (d Duration) TotalMinutes() int {
	return d.sign() * int(d.minutes())
}

// TotalSeconds returns TotalMinutes*60 plus the seconds and their fraction
func (d Duration) TotalSeconds() float64 {
	whole := float64(d.minutes()*60 + int64(d.iv.Seconds))
	return float64(d.sign()) * (whole + d.Fraction())
}

// Approx converts d to a time.Duration using the same calendar
// approximation as TotalSeconds. Values beyond the range of time.Duration
// saturate.
func (d Duration) Approx() time.Duration {
	const maxSeconds = math.MaxInt64 / int64(time.Second)

	whole := d.minutes()*60 + int64(d.iv.Seconds)
	if whole >= maxSeconds {
		if d.iv.Negative {
			return time.Duration(math.MinInt64)
		}
		return time.Duration(math.MaxInt64)
	}

	total := time.Duration(whole)*time.Second + time.Duration(d.iv.Microseconds)*time.Microsecond
	return time.Duration(d.sign()) * total
}

// AddTo adds d to t using calendar arithmetic: years, months and days are
// added with time.AddDate, the clock fields as elapsed time.
func (d Duration) AddTo(t time.Time) time.Time {
	s := d.sign()
	iv := d.iv

	days := iv.Days
	if iv.TotalDays > 0 {
		days = iv.TotalDays
	}

	clock := (int64(iv.Hours)*60+int64(iv.Minutes))*60 + int64(iv.Seconds)

	t = t.AddDate(s*iv.Years, s*iv.Months, s*days)
	t = addSeconds(t, int64(s)*clock)
	return t.Add(time.Duration(s*iv.Microseconds) * time.Microsecond)
}

// addSeconds adds n seconds in steps that fit a time.Duration
func addSeconds(t time.Time, n int64) time.Time {
	const step = math.MaxInt64 / int64(time.Second)

	for n > step {
		t = t.Add(time.Duration(step) * time.Second)
		n -= step
	}
	for n < -step {
		t = t.Add(-time.Duration(step) * time.Second)
		n += step
	}
	return t.Add(time.Duration(n) * time.Second)
}

// Period converts d to a period.Period. The fraction is kept in the
// seconds field.
func (d Duration) Period() period.Period {
	iv := d.iv

	days := iv.Days
	if iv.TotalDays > 0 {
		days = iv.TotalDays
	}

	seconds := decimal.MustNew(int64(iv.Seconds)*microsPerSecond+int64(iv.Microseconds), fractionDigits)
	p := period.MustNewDecimal(
		decimal.MustNew(int64(iv.Years), 0),
		decimal.MustNew(int64(iv.Months), 0),
		decimal.Zero,
		decimal.MustNew(int64(days), 0),
		decimal.MustNew(int64(iv.Hours), 0),
		decimal.MustNew(int64(iv.Minutes), 0),
		seconds,
	)

	if iv.Negative {
		return p.Negate()
	}
	return p
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
