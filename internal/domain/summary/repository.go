package summary

import (
	"context"
	"time"
)

type SummaryRepository interface {
	// GetByEmployeeAndMonth returns the summary row, or nil when none
	// exists. With forUpdate the row is locked, serializing concurrent
	// validations of the same employee-month.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month, forUpdate bool) (*MonthlySummary, error)

	// Upsert writes the summary for (employee, year, month), preserving row
	// identity
	Upsert(ctx context.Context, s MonthlySummary) (MonthlySummary, error)

	// MarkCalculated flips an existing summary back to the calculated state
	// and clears the validator fields. Missing rows are a no-op; months
	// never aggregated have nothing to go stale.
	MarkCalculated(ctx context.Context, employeeID string, year int, month time.Month) error
}

type ValidationRepository interface {
	// Upsert writes the validation marker for (employee, month, year)
	Upsert(ctx context.Context, v MonthlyValidation) (MonthlyValidation, error)

	// Delete removes the marker; absence is not an error
	Delete(ctx context.Context, employeeID string, year int, month time.Month) error

	// Get returns the marker, or nil when the month is not validated
	Get(ctx context.Context, employeeID string, year int, month time.Month) (*MonthlyValidation, error)
}
