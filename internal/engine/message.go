package engine

import (
	"fmt"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

// Tier buckets a countdown into one of six message bands. The bands
// are contiguous and exhaustive over non-negative day counts:
// 0, 1, 2-7, 8-30, 31-90, 91+.
type Tier int

const (
	TierToday Tier = iota
	TierTomorrow
	TierWeek
	TierMonth
	TierQuarter
	TierBeyond
)

// TierFor selects the message band for a day count.
func TierFor(days int) Tier {
	switch {
	case days <= 0:
		return TierToday
	case days == 1:
		return TierTomorrow
	case days <= 7:
		return TierWeek
	case days <= 30:
		return TierMonth
	case days <= 90:
		return TierQuarter
	default:
		return TierBeyond
	}
}

// Key returns the translation key a localized renderer looks up for
// this tier.
func (t Tier) Key() string {
	switch t {
	case TierToday:
		return config.TKeyMsgToday
	case TierTomorrow:
		return config.TKeyMsgTomorrow
	case TierWeek:
		return config.TKeyMsgWeek
	case TierMonth:
		return config.TKeyMsgMonth
	case TierQuarter:
		return config.TKeyMsgQuarter
	default:
		return config.TKeyMsgBeyond
	}
}

// Message renders the built-in English template for a tier. The HTTP
// layer substitutes a localized renderer where one is available; this
// is the fallback and the reference wording.
func Message(tier Tier, days int) string {
	switch tier {
	case TierToday:
		return config.MsgTierToday
	case TierTomorrow:
		return config.MsgTierTomorrow
	case TierWeek:
		return fmt.Sprintf(config.MsgTierWeek, days)
	case TierMonth:
		return fmt.Sprintf(config.MsgTierMonth, days)
	case TierQuarter:
		return fmt.Sprintf(config.MsgTierQuarter, days)
	default:
		return fmt.Sprintf(config.MsgTierBeyond, days)
	}
}

// AgeMessage renders the built-in English age summary.
func AgeMessage(years int) string {
	return fmt.Sprintf(config.MsgAgeSummary, years)
}

// MessageFunc renders a countdown message for a tier and day count.
// Message is the zero-dependency implementation.
type MessageFunc func(tier Tier, days int) string
