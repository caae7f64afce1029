package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

// NextBirthdayICS renders a countdown result as an iCalendar object
// holding one all-day event on the next birthday. The UID is derived
// from the birth date so repeated exports of the same birthday stay
// stable across requests.
func NextBirthdayICS(res Result) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	input := fmt.Sprintf(config.FormatHashInput, res.Birth.String(), res.NextBirthday.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	// On the birthday itself AgeYears is already the new age.
	turning := res.AgeYears + 1
	if res.DaysUntil == 0 {
		turning = res.AgeYears
	}

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, res.NextBirthday.Year, config.ICalDomain))
	event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatICalSummary, turning))

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(res.Today.Time())
	event.Props.Set(dtStamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(res.NextBirthday.Time())
	event.Props.Set(dtStart)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
