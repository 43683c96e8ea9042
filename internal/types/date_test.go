package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2025-06-20")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 20, d.Day())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseCalendarDate("20/06/2025")
	assert.Error(t, err)

	_, err = ParseCalendarDate("")
	assert.Error(t, err)
}

func TestNightsBetween(t *testing.T) {
	checkIn := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		nights   int
	}{
		{"three_nights", time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), 3},
		{"one_night", time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), 1},
		{"same_day", checkIn, 0},
		{"inverted", time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nights, NightsBetween(checkIn, tt.checkOut))
		})
	}

	// Time-of-day must not change the night count
	lateCheckIn := time.Date(2025, 6, 20, 23, 30, 0, 0, time.UTC)
	earlyCheckOut := time.Date(2025, 6, 23, 1, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, NightsBetween(lateCheckIn, earlyCheckOut))
}

func TestDateWithinRange(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, DateWithinRange(start, start, end))
	assert.True(t, DateWithinRange(end, start, end))
	assert.True(t, DateWithinRange(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), start, end))
	assert.False(t, DateWithinRange(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), start, end))
	assert.False(t, DateWithinRange(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), start, end))
}

func TestDaysUntil(t *testing.T) {
	from := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 19, DaysUntil(from, until))
	assert.Equal(t, 0, DaysUntil(from, from))
}

func TestGetCurrencyPrecision(t *testing.T) {
	assert.Equal(t, int32(2), GetCurrencyPrecision("usd"))
	assert.Equal(t, int32(0), GetCurrencyPrecision("jpy"))
	assert.Equal(t, int32(3), GetCurrencyPrecision("bhd"))
	// Lookup is case-insensitive, not a fallback to the default
	assert.Equal(t, int32(2), GetCurrencyPrecision("USD"))
	assert.Equal(t, int32(0), GetCurrencyPrecision("JPY"))
	assert.True(t, IsValidCurrency("JPY"))
	// Unknown currencies fall back to 2 decimal places
	assert.Equal(t, int32(2), GetCurrencyPrecision("zzz"))
	assert.False(t, IsValidCurrency("zzz"))
}
