package schedule

import (
	"context"
	"time"
)

// ResolverService answers "what was this employee scheduled to work".
type ResolverService interface {
	// IntervalsOn returns the intervals scheduled for a date, ordered by
	// start time. An empty result means the date is a day off; it is not an
	// error.
	IntervalsOn(ctx context.Context, employeeID string, date time.Time) ([]Interval, error)

	// MonthIntervals resolves every day of a month in one pass, keyed by
	// day of month. Unscheduled days are absent from the map.
	MonthIntervals(ctx context.Context, employeeID string, year int, month time.Month) (map[int][]Interval, error)

	// Timetable returns a timetable with its full interval grid
	Timetable(ctx context.Context, id string) (TimetableResponse, error)
}
