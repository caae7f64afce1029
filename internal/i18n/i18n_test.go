package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-nextbirthday/internal/engine"
)

var tierSamples = map[engine.Tier]int{
	engine.TierToday:    0,
	engine.TierTomorrow: 1,
	engine.TierWeek:     5,
	engine.TierMonth:    21,
	engine.TierQuarter:  60,
	engine.TierBeyond:   200,
}

// TestRender_EnglishMatchesBuiltIn pins the en locale to the engine's
// reference wording: the locale file must never drift from the
// built-in templates.
func TestRender_EnglishMatchesBuiltIn(t *testing.T) {
	msgs := NewMessages(NewBundle(), "en")

	for tier, days := range tierSamples {
		assert.Equalf(t, engine.Message(tier, days), msgs.Render(tier, days), "tier %d", tier)
	}
}

func TestRender_French(t *testing.T) {
	msgs := NewMessages(NewBundle(), "fr")

	assert.Contains(t, msgs.Render(engine.TierToday, 0), "anniversaire")
	assert.Contains(t, msgs.Render(engine.TierWeek, 5), "5 jours")
	assert.Contains(t, msgs.RenderAge(23), "23 ans")
}

// TestRender_AcceptLanguageHeader: the renderer takes the raw header
// value, quality weights included.
func TestRender_AcceptLanguageHeader(t *testing.T) {
	bundle := NewBundle()

	fr := NewMessages(bundle, "fr-CH, fr;q=0.9, en;q=0.8")
	assert.Contains(t, fr.Render(engine.TierTomorrow, 1), "demain")

	// Unknown language falls back to English.
	de := NewMessages(bundle, "de-DE")
	assert.Equal(t, engine.Message(engine.TierTomorrow, 1), de.Render(engine.TierTomorrow, 1))

	// No header at all behaves the same.
	none := NewMessages(bundle, "")
	assert.Equal(t, engine.Message(engine.TierToday, 0), none.Render(engine.TierToday, 0))
}

func TestRenderAge_English(t *testing.T) {
	msgs := NewMessages(NewBundle(), "en")
	assert.Equal(t, engine.AgeMessage(30), msgs.RenderAge(30))
}

func TestRender_NeverEmpty(t *testing.T) {
	for _, lang := range []string{"en", "fr", "de", ""} {
		msgs := NewMessages(NewBundle(), lang)
		for tier, days := range tierSamples {
			require.NotEmptyf(t, msgs.Render(tier, days), "lang=%q tier=%d", lang, tier)
		}
	}
}
