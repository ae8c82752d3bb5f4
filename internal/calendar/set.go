package calendar

import (
	"sort"
	"time"
)

// DateLayout is the wire format of a civil date.
const DateLayout = "2006-01-02"

// Set is a set of civil dates. Keys are DateLayout strings so that two
// time.Time values for the same day in different locations compare equal.
type Set map[string]struct{}

func NewSet(dates ...time.Time) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s Set) Add(d time.Time) {
	s[d.Format(DateLayout)] = struct{}{}
}

func (s Set) Contains(d time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s[d.Format(DateLayout)]
	return ok
}

// Merge adds every date of other into s and returns s.
func (s Set) Merge(other Set) Set {
	for k := range other {
		s[k] = struct{}{}
	}
	return s
}

// Strings returns the dates in ascending order.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SetFromStrings is the inverse of Strings. Malformed entries are skipped.
func SetFromStrings(values []string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		d, err := time.Parse(DateLayout, v)
		if err != nil {
			continue
		}
		s.Add(d)
	}
	return s
}

// Date truncates t to midnight UTC of its own calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
