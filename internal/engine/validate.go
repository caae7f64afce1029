package engine

import (
	"regexp"
	"time"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

// Reason identifies why a date of birth was rejected.
type Reason int

const (
	// ReasonMissing: the dob parameter was absent or empty.
	ReasonMissing Reason = iota
	// ReasonMalformedFormat: the string does not match YYYY-MM-DD.
	ReasonMalformedFormat
	// ReasonInvalidCalendarDate: well-formed but not a real date
	// (month 13, February 30, ...).
	ReasonInvalidCalendarDate
	// ReasonFutureDate: a real date strictly later than today.
	ReasonFutureDate
)

// ValidationError is the typed rejection returned by ValidateDOB.
// Each reason maps to one stable, user-facing message.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonMissing:
		return config.MsgDOBMissing
	case ReasonMalformedFormat:
		return config.MsgDOBMalformed
	case ReasonInvalidCalendarDate:
		return config.MsgDOBInvalid
	case ReasonFutureDate:
		return config.MsgDOBFuture
	default:
		return config.MsgDOBInvalid
	}
}

// isoDatePattern gates the input before time.Parse so that a malformed
// string and an impossible calendar date report distinct reasons.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDOB parses a caller-supplied date-of-birth string against the
// canonical ISO YYYY-MM-DD contract. It accepts today itself as a birth
// date and never reads the clock: today is injected by the caller.
func ValidateDOB(raw string, today Date) (Date, *ValidationError) {
	if raw == "" {
		return Date{}, &ValidationError{Reason: ReasonMissing}
	}
	if !isoDatePattern.MatchString(raw) {
		return Date{}, &ValidationError{Reason: ReasonMalformedFormat}
	}
	t, err := time.Parse(config.DateFormatISO, raw)
	if err != nil {
		return Date{}, &ValidationError{Reason: ReasonInvalidCalendarDate}
	}
	dob := DateOf(t)
	if dob.After(today) {
		return Date{}, &ValidationError{Reason: ReasonFutureDate}
	}
	return dob, nil
}
