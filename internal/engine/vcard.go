package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

// ContactBirthday is one vCard contact with its computed countdown.
// YearKnown is false for truncated BDAY values like --02-29, in which
// case AgeYears in the embedded Result is meaningless and callers
// should omit it.
type ContactBirthday struct {
	Name      string
	Birth     Date
	YearKnown bool
	Result    Result
}

// ScanVCards decodes a vCard stream and computes the countdown for
// every contact carrying a parseable, non-future BDAY. Cards without
// one are counted but skipped. Entries come back sorted by days until
// the next birthday, soonest first. A broken stream aborts the scan
// with an error; partial results are discarded by the caller.
func ScanVCards(r io.Reader, today Date) (scanned int, entries []ContactBirthday, err error) {
	decoder := vcard.NewDecoder(r)
	for {
		card, decodeErr := decoder.Decode()
		if errors.Is(decodeErr, io.EOF) {
			break
		}
		if decodeErr != nil {
			return scanned, nil, fmt.Errorf("%s: %w", config.ErrVCardParse, decodeErr)
		}
		scanned++

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}
		birth, yearKnown, parseErr := parseBDAY(bday.Value)
		if parseErr != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value,
			)
			continue
		}
		if birth.After(today) {
			slog.Debug(config.MsgSkippedFuture,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyDOB, birth.String(),
			)
			continue
		}

		// Name strategy: FN (formatted) > N (structured) > empty.
		name := ""
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		entries = append(entries, ContactBirthday{
			Name:      name,
			Birth:     birth,
			YearKnown: yearKnown,
			Result:    Compute(birth, today),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.DaysUntil < entries[j].Result.DaysUntil
	})
	return scanned, entries, nil
}

// parseBDAY handles the date layouts vCard allows for BDAY. Truncated
// values without a year fall back to a leap year so --02-29 survives
// parsing; yearKnown is false for those.
func parseBDAY(value string) (Date, bool, error) {
	formatsWithYear := []string{
		config.DateFormatISO,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return DateOf(t), true, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return NewDate(config.DefaultLeapYear, t.Month(), t.Day()), false, nil
		}
	}

	return Date{}, false, errors.New(config.ErrDateParse)
}
