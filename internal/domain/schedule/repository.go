package schedule

import (
	"context"
	"time"
)

type TimetableRepository interface {
	// GetAssignedIntervals returns every interval reachable through an
	// assignment whose effective window overlaps [from, to], together with
	// that window. Ordered by weekday then start time.
	GetAssignedIntervals(ctx context.Context, employeeID string, from, to time.Time) ([]AssignedInterval, error)

	// GetByID retrieves a timetable with its intervals
	GetByID(ctx context.Context, id string) (Timetable, []Interval, error)
}
