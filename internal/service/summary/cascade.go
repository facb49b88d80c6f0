package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/summary"
)

// Cascade reverts a validated month to the calculated state whenever one of
// its underlying inputs changes. Every mutation that can move a day's
// classification (punch writes, override writes, day saves and reverts)
// calls it inside its own transaction; there is no silent revalidation.
type Cascade struct {
	summaryRepo    summary.SummaryRepository
	validationRepo summary.ValidationRepository
}

func NewCascade(summaryRepo summary.SummaryRepository, validationRepo summary.ValidationRepository) *Cascade {
	return &Cascade{
		summaryRepo:    summaryRepo,
		validationRepo: validationRepo,
	}
}

// InvalidateIfValidated flips the month containing date back to Calculated
// when that month is currently validated for the employee. Runs against the
// caller's transaction context.
func (c *Cascade) InvalidateIfValidated(ctx context.Context, employeeID string, date time.Time) error {
	return c.InvalidateMonth(ctx, employeeID, date.Year(), date.Month())
}

// InvalidateMonth is the month-keyed form of InvalidateIfValidated.
func (c *Cascade) InvalidateMonth(ctx context.Context, employeeID string, year int, month time.Month) error {
	// Lock the summary row so the flip serializes against a concurrent
	// validation of the same employee-month.
	s, err := c.summaryRepo.GetByEmployeeAndMonth(ctx, employeeID, year, month, true)
	if err != nil {
		return fmt.Errorf("failed to load summary for invalidation: %w", err)
	}
	if s == nil || !s.IsValidated {
		return nil
	}

	if err := c.summaryRepo.MarkCalculated(ctx, employeeID, year, month); err != nil {
		return fmt.Errorf("failed to revert summary to calculated: %w", err)
	}
	if err := c.validationRepo.Delete(ctx, employeeID, year, month); err != nil {
		return fmt.Errorf("failed to delete validation marker: %w", err)
	}

	slog.Info("validated month invalidated",
		"employee_id", employeeID,
		"year", year,
		"month", int(month),
	)

	return nil
}
