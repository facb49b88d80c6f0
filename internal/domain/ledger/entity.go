package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeEntry records extra hours worked on a date.
type OvertimeEntry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Hours      decimal.Decimal
	Reason     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdjustmentKind enum for wage adjustments.
type AdjustmentKind string

const (
	AdjustmentRaise    AdjustmentKind = "raise"
	AdjustmentDecrease AdjustmentKind = "decrease"
	AdjustmentCredit   AdjustmentKind = "credit"
)

// WageAdjustment is one signed entry in the salary-adjustment ledger.
type WageAdjustment struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Kind       AdjustmentKind
	Amount     decimal.Decimal
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Sign returns the contribution direction of an adjustment kind: -1 for
// decrease and credit, +1 for raise and any unrecognized kind.
func (k AdjustmentKind) Sign() int {
	switch k {
	case AdjustmentDecrease, AdjustmentCredit:
		return -1
	}
	return 1
}

// SignedSum folds a month of adjustments into one signed amount.
func SignedSum(adjustments []WageAdjustment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range adjustments {
		if a.Kind.Sign() < 0 {
			total = total.Sub(a.Amount)
		} else {
			total = total.Add(a.Amount)
		}
	}
	return total
}
