package calendar_test

import (
	"testing"
	"time"

	"leave-approval/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(calendar.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBusinessDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		holidays calendar.Set
		want     int
	}{
		{name: "full work week", start: "2025-03-03", end: "2025-03-07", want: 5},
		{name: "single weekday", start: "2025-03-04", end: "2025-03-04", want: 1},
		{name: "weekend only", start: "2025-03-08", end: "2025-03-09", want: 0},
		{name: "spans weekend", start: "2025-03-06", end: "2025-03-11", want: 4},
		{
			name:     "holiday and weekend only",
			start:    "2025-07-04",
			end:      "2025-07-06",
			holidays: calendar.NationalHolidays(2025),
			want:     0,
		},
		{
			name:     "holiday inside week",
			start:    "2025-03-03",
			end:      "2025-03-07",
			holidays: calendar.NewSet(day("2025-03-05")),
			want:     4,
		},
		{name: "end before start", start: "2025-03-07", end: "2025-03-03", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.BusinessDays(day(tt.start), day(tt.end), tt.holidays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountBusinessDays(t *testing.T) {
	t.Run("rejects inverted range", func(t *testing.T) {
		n, err := calendar.CountBusinessDays(day("2025-03-07"), day("2025-03-03"), nil)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
		assert.Zero(t, n)
	})

	t.Run("ignores time of day", func(t *testing.T) {
		start := time.Date(2025, 3, 3, 23, 30, 0, 0, time.UTC)
		end := time.Date(2025, 3, 5, 1, 0, 0, 0, time.UTC)
		n, err := calendar.CountBusinessDays(start, end, calendar.Set{})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestNationalHolidays(t *testing.T) {
	set := calendar.NationalHolidays(2025)

	for _, d := range []string{
		"2025-01-01", "2025-01-20", "2025-02-17", "2025-05-26", "2025-06-19",
		"2025-07-04", "2025-09-01", "2025-10-13", "2025-11-11", "2025-11-27", "2025-12-25",
	} {
		assert.True(t, set.Contains(day(d)), d)
	}
	assert.Len(t, set, 11)
	assert.False(t, set.Contains(day("2025-11-28")))
}

func TestSetRoundTrip(t *testing.T) {
	set := calendar.NewSet(day("2025-12-25"), day("2025-01-01"))
	strs := set.Strings()
	assert.Equal(t, []string{"2025-01-01", "2025-12-25"}, strs)

	back := calendar.SetFromStrings(append(strs, "not-a-date"))
	assert.Len(t, back, 2)
	assert.True(t, back.Contains(day("2025-01-01")))
}

func TestYearsBetween(t *testing.T) {
	assert.Equal(t, []int{2025, 2026}, calendar.YearsBetween(day("2025-12-30"), day("2026-01-02")))
	assert.Equal(t, []int{2025}, calendar.YearsBetween(day("2025-03-01"), day("2025-03-02")))
}
