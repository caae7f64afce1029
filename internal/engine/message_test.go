package engine

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		days int
		tier Tier
	}{
		{0, TierToday},
		{1, TierTomorrow},
		{2, TierWeek},
		{7, TierWeek},
		{8, TierMonth},
		{30, TierMonth},
		{31, TierQuarter},
		{90, TierQuarter},
		{91, TierBeyond},
		{365, TierBeyond},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.tier, TierFor(tt.days), "days=%d", tt.days)
	}
}

// TestTierFor_ContiguousBands verifies the bands neither gap nor
// overlap: the tier is monotone non-decreasing over the day counts.
func TestTierFor_ContiguousBands(t *testing.T) {
	prev := TierFor(0)
	for days := 1; days <= 400; days++ {
		tier := TierFor(days)
		assert.GreaterOrEqualf(t, int(tier), int(prev), "tier regressed at %d days", days)
		assert.LessOrEqualf(t, int(tier)-int(prev), 1, "tier skipped a band at %d days", days)
		prev = tier
	}
	assert.Equal(t, TierBeyond, prev)
}

func TestMessage_Templates(t *testing.T) {
	assert.Equal(t, config.MsgTierToday, Message(TierToday, 0))
	assert.Equal(t, config.MsgTierTomorrow, Message(TierTomorrow, 1))
	assert.Equal(t, fmt.Sprintf(config.MsgTierWeek, 5), Message(TierWeek, 5))
	assert.Equal(t, fmt.Sprintf(config.MsgTierMonth, 21), Message(TierMonth, 21))
	assert.Equal(t, fmt.Sprintf(config.MsgTierQuarter, 60), Message(TierQuarter, 60))
	assert.Equal(t, fmt.Sprintf(config.MsgTierBeyond, 200), Message(TierBeyond, 200))
}

// TestMessage_DistinctMarkers: each band carries its own decorative
// marker so callers (and humans) can tell them apart.
func TestMessage_DistinctMarkers(t *testing.T) {
	seen := map[string]Tier{}
	samples := map[Tier]int{
		TierToday:    0,
		TierTomorrow: 1,
		TierWeek:     5,
		TierMonth:    21,
		TierQuarter:  60,
		TierBeyond:   200,
	}

	for tier, days := range samples {
		msg := Message(tier, days)
		assert.NotEmpty(t, msg)
		marker := string([]rune(msg)[0])
		other, dup := seen[marker]
		assert.Falsef(t, dup, "tiers %d and %d share marker %q", tier, other, marker)
		seen[marker] = tier
	}
}

func TestMessage_IncludesDayCount(t *testing.T) {
	for _, days := range []int{2, 8, 31, 91} {
		msg := Message(TierFor(days), days)
		assert.Contains(t, msg, strconv.Itoa(days))
	}
}

func TestAgeMessage(t *testing.T) {
	assert.Equal(t, "You are 23 years old!", AgeMessage(23))
}
