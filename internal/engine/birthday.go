package engine

import "time"

// Result is the outcome of a next-birthday computation. It is built
// once per request, immutable, and carries no identity beyond it.
type Result struct {
	Birth        Date
	Today        Date
	AgeYears     int
	NextBirthday Date
	Weekday      time.Weekday
	DaysUntil    int
	Tier         Tier
}

// AgeYears returns the age in whole years: the year difference, minus
// one when the birth month/day has not yet recurred this year. When
// today is exactly the birthday, nothing is subtracted.
func AgeYears(birth, today Date) int {
	age := today.Year - birth.Year
	if today.Month < birth.Month || (today.Month == birth.Month && today.Day < birth.Day) {
		age--
	}
	return age
}

// remapBirthday projects a birth date into a target year. A February 29
// birth date lands on February 28 when the target year is not a leap
// year, never March 1.
func remapBirthday(birth Date, year int) Date {
	if birth.Month == time.February && birth.Day == 29 && !IsLeapYear(year) {
		return Date{Year: year, Month: time.February, Day: 28}
	}
	return Date{Year: year, Month: birth.Month, Day: birth.Day}
}

// NextBirthday returns the next occurrence of the birthday relative to
// today. The this-year candidate wins whenever it is today or later;
// only a strictly past candidate rolls over to next year.
func NextBirthday(birth, today Date) Date {
	candidate := remapBirthday(birth, today.Year)
	if !candidate.Before(today) {
		return candidate
	}
	return remapBirthday(birth, today.Year+1)
}

// Compute derives the full countdown record for a validated,
// non-future birth date. It is total over that domain: no failure
// paths, no side effects, identical output for identical input.
func Compute(birth, today Date) Result {
	next := NextBirthday(birth, today)
	days := DaysBetween(today, next)
	return Result{
		Birth:        birth,
		Today:        today,
		AgeYears:     AgeYears(birth, today),
		NextBirthday: next,
		Weekday:      next.Weekday(),
		DaysUntil:    days,
		Tier:         TierFor(days),
	}
}

// AgeBreakdown returns the elapsed age as whole years, whole months,
// and total days.
func AgeBreakdown(birth, today Date) (years, months, days int) {
	years = AgeYears(birth, today)
	months = (today.Year-birth.Year)*12 + int(today.Month) - int(birth.Month)
	if today.Day < birth.Day {
		months--
	}
	days = DaysBetween(birth, today)
	return years, months, days
}
