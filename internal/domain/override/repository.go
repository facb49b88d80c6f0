package override

import (
	"context"
	"time"
)

type OverrideRepository interface {
	// Upsert writes the override for (employee, date). An existing row keeps
	// its identity; kind, details, exception reference and creator are
	// replaced. Returns the stored row.
	Upsert(ctx context.Context, o Override) (Override, error)

	// GetByEmployeeAndDate returns the override for the day, or nil when
	// none exists. With forUpdate the row is locked for the enclosing
	// transaction.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*Override, error)

	// GetForMonth returns the month's overrides keyed by day of month
	GetForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int]Override, error)

	// DeleteByEmployeeAndDate removes the day's override. Kind restrictions
	// are enforced by the service layer.
	DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error

	// DeleteByExceptionID removes every override an exception produced and
	// returns the (employee, date) pairs that were removed
	DeleteByExceptionID(ctx context.Context, exceptionID string) ([]Override, error)

	// DeleteExceptionDayEditsInMonth removes exception-linked day_edit
	// overrides inside a month, restoring punch-derived truth before a
	// recalculation. Returns the number of rows removed.
	DeleteExceptionDayEditsInMonth(ctx context.Context, employeeID string, year int, month time.Month) (int64, error)
}
