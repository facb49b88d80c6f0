package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerRepository interface {
	// SumOvertimeHours totals recorded overtime dated inside the month
	SumOvertimeHours(ctx context.Context, employeeID string, year int, month time.Month) (decimal.Decimal, error)

	// ListWageAdjustments returns the month's salary-adjustment entries
	ListWageAdjustments(ctx context.Context, employeeID string, year int, month time.Month) ([]WageAdjustment, error)

	// CreateOvertime inserts an overtime entry, locking the entry row set
	// for the day so concurrent accumulator merges serialize
	CreateOvertime(ctx context.Context, e OvertimeEntry) (OvertimeEntry, error)
}
