package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanVCards_MixedStream(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:Far Birthday
BDAY:1990-12-31
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Soon Birthday
BDAY:19900620
END:VCARD`

	today := NewDate(2025, time.June, 15)
	scanned, entries, err := ScanVCards(strings.NewReader(vcardContent), today)

	require.NoError(t, err)
	assert.Equal(t, 3, scanned)
	require.Len(t, entries, 2)

	// Sorted soonest first.
	assert.Equal(t, "Soon Birthday", entries[0].Name)
	assert.Equal(t, NewDate(2025, time.June, 20), entries[0].Result.NextBirthday)
	assert.Equal(t, 5, entries[0].Result.DaysUntil)
	assert.True(t, entries[0].YearKnown)
	assert.Equal(t, 34, entries[0].Result.AgeYears)

	assert.Equal(t, "Far Birthday", entries[1].Name)
	assert.Equal(t, NewDate(2025, time.December, 31), entries[1].Result.NextBirthday)
}

func TestScanVCards_YearlessBDAY(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:Leap Baby
BDAY:--02-29
END:VCARD`

	today := NewDate(2025, time.June, 15)
	scanned, entries, err := ScanVCards(strings.NewReader(vcardContent), today)

	require.NoError(t, err)
	assert.Equal(t, 1, scanned)
	require.Len(t, entries, 1)

	assert.False(t, entries[0].YearKnown)
	// 2026 is not a leap year, so the occurrence remaps to Feb 28.
	assert.Equal(t, NewDate(2026, time.February, 28), entries[0].Result.NextBirthday)
}

func TestScanVCards_SkipsUnparseableAndFuture(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:Bad Date
BDAY:soon
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Not Born Yet
BDAY:2030-01-01
END:VCARD`

	today := NewDate(2025, time.June, 15)
	scanned, entries, err := ScanVCards(strings.NewReader(vcardContent), today)

	require.NoError(t, err)
	assert.Equal(t, 2, scanned)
	assert.Empty(t, entries)
}

func TestScanVCards_BrokenStream(t *testing.T) {
	_, _, err := ScanVCards(strings.NewReader("this is not a vcard"), NewDate(2025, time.June, 15))
	assert.Error(t, err)
}

func TestParseBDAY_Formats(t *testing.T) {
	tests := []struct {
		value     string
		want      Date
		yearKnown bool
	}{
		{"2000-01-01", NewDate(2000, time.January, 1), true},
		{"20000229", NewDate(2000, time.February, 29), true},
		{"1985-04-12T00:00:00Z", NewDate(1985, time.April, 12), true},
		{"--12-25", NewDate(2000, time.December, 25), false},
		{"--0229", NewDate(2000, time.February, 29), false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, yearKnown, err := parseBDAY(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.yearKnown, yearKnown)
		})
	}

	_, _, err := parseBDAY("whenever")
	assert.Error(t, err)
}
