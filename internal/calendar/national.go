package calendar

import "time"

// Holiday is a named civil date.
type Holiday struct {
	Date time.Time
	Name string
}

// NationalHolidayList returns the fixed and floating national holidays of
// year in calendar order. Dates are the nominal ones; no weekend
// substitution is applied.
func NationalHolidayList(year int) []Holiday {
	return []Holiday{
		{fixed(year, time.January, 1), "New Year's Day"},
		{nthWeekday(year, time.January, time.Monday, 3), "Martin Luther King Jr. Day"},
		{nthWeekday(year, time.February, time.Monday, 3), "Presidents' Day"},
		{lastWeekday(year, time.May, time.Monday), "Memorial Day"},
		{fixed(year, time.June, 19), "Juneteenth"},
		{fixed(year, time.July, 4), "Independence Day"},
		{nthWeekday(year, time.September, time.Monday, 1), "Labor Day"},
		{nthWeekday(year, time.October, time.Monday, 2), "Columbus Day"},
		{fixed(year, time.November, 11), "Veterans Day"},
		{nthWeekday(year, time.November, time.Thursday, 4), "Thanksgiving Day"},
		{fixed(year, time.December, 25), "Christmas Day"},
	}
}

func NationalHolidays(year int) Set {
	list := NationalHolidayList(year)
	s := make(Set, len(list))
	for _, h := range list {
		s.Add(h.Date)
	}
	return s
}

func fixed(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	first := fixed(year, month, 1)
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+7*(n-1))
}

func lastWeekday(year int, month time.Month, wd time.Weekday) time.Time {
	last := fixed(year, month+1, 1).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -offset)
}
