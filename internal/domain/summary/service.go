package summary

import (
	"context"
	"time"
)

// SummaryService defines monthly aggregation and the validation lifecycle
type SummaryService interface {
	// GetMonthly aggregates a month live, without persisting anything
	GetMonthly(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySummaryResponse, error)

	// CheckValidation reports whether the month can be validated and the
	// exact count of pending days blocking it
	CheckValidation(ctx context.Context, employeeID string, year int, month time.Month) (ValidationCheck, error)

	// Validate locks the month: recomputes pending days, refuses with the
	// count when any remain, otherwise persists a validated snapshot
	Validate(ctx context.Context, req MonthRequest) (MonthlySummaryResponse, error)

	// Recalculate drops exception-linked day edits for the month, clears
	// validation and re-aggregates
	Recalculate(ctx context.Context, req MonthRequest) (MonthlySummaryResponse, error)

	// Invalidate forces a validated month back to calculated
	Invalidate(ctx context.Context, req MonthRequest) error

	// BulkValidate validates each employee in the filter independently;
	// one employee's refusal or failure never aborts the batch
	BulkValidate(ctx context.Context, req BulkValidateRequest) (BulkValidateResult, error)
}
