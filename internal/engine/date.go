package engine

import (
	"time"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

// Date is a Gregorian calendar day without time-of-day or location.
// Once built through NewDate, DateOf or ValidateDOB, Month and Day are
// always a valid combination for Year.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar day, in the instant's
// own location. Birthdays follow the local calendar, not UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns midnight UTC of the day. All day arithmetic goes
// through this fixed location so differences are exact multiples of
// 24 hours.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the date in ISO YYYY-MM-DD form.
func (d Date) String() string {
	return d.Time().Format(config.DateFormatISO)
}

// Weekday returns the day of week under the proleptic Gregorian calendar.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d falls strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// IsLeapYear reports whether a year has a February 29: divisible by 4,
// except centurial years not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysBetween returns the exact calendar-day count from one date to
// another. Negative when to precedes from.
func DaysBetween(from, to Date) int {
	return int(to.Time().Sub(from.Time()) / (24 * time.Hour))
}
