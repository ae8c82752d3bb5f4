package leave

import (
	"context"

	"leave-approval/internal/calendar"
)

//go:generate mockgen -source=leave_ports.go -destination=mock/leave_ports_mock.go -package=mock

// HolidayProvider returns the non-working dates of a calendar year.
type HolidayProvider interface {
	HolidaysForYear(ctx context.Context, year int) (calendar.Set, error)
}
