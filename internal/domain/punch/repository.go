package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	// Create inserts a raw punch
	Create(ctx context.Context, p RawPunch) (RawPunch, error)

	// GetByID retrieves a punch
	GetByID(ctx context.Context, id string) (RawPunch, error)

	// Delete removes a punch permanently
	Delete(ctx context.Context, id string) error

	// TimesForDay returns the punch times recorded for an employee on a
	// date, ascending
	TimesForDay(ctx context.Context, employeeID string, date time.Time) ([]time.Time, error)

	// TimesForMonth returns punch times for every day of a month, keyed by
	// day of month
	TimesForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int][]time.Time, error)

	// ListUnresolved returns punches whose employee identity is still
	// unknown
	ListUnresolved(ctx context.Context, limit int) ([]RawPunch, error)

	// AssignEmployee stamps the resolved employee id onto a punch
	AssignEmployee(ctx context.Context, punchID, employeeID string) error

	// HasSyntheticForDay reports whether a correction-sourced punch already
	// exists for the employee-day, used to keep punch_add idempotent
	HasSyntheticForDay(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// DeleteSyntheticInRange removes synthetic punches dated inside the
	// inclusive day range and returns the number removed
	DeleteSyntheticInRange(ctx context.Context, employeeID string, from, to time.Time) (int64, error)
}
