package calendar

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("end date before start date")

func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BusinessDays counts the days in [start, end] that are neither a weekend
// day nor in holidays. It returns 0 when end is before start; use
// CountBusinessDays when that case must be reported.
func BusinessDays(start, end time.Time, holidays Set) int {
	start, end = Date(start), Date(end)
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) || holidays.Contains(d) {
			continue
		}
		days++
	}
	return days
}

func CountBusinessDays(start, end time.Time, holidays Set) (int, error) {
	if Date(end).Before(Date(start)) {
		return 0, ErrInvalidRange
	}
	return BusinessDays(start, end, holidays), nil
}

// YearsBetween lists every calendar year touched by [start, end].
func YearsBetween(start, end time.Time) []int {
	if end.Before(start) {
		return []int{start.Year()}
	}
	years := make([]int, 0, end.Year()-start.Year()+1)
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}
	return years
}
