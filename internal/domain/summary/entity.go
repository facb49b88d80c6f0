package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationMethod enum
type CalculationMethod string

const (
	MethodCalculated CalculationMethod = "calculated"
	MethodValidated  CalculationMethod = "validated"
)

// MonthlySummary aggregates one employee-month. One row per
// (employee_id, year, month); created lazily on first aggregation or
// validation.
type MonthlySummary struct {
	ID                string
	EmployeeID        string
	Year              int
	Month             int
	ScheduledDays     int
	WorkedDays        int
	AbsenceDays       int
	PendingDays       int
	LateMinutes       int
	EarlyMinutes      int
	OvertimeHours     decimal.Decimal
	WageChanges       decimal.Decimal
	IsValidated       bool
	ValidatedBy       *string
	ValidatedAt       *time.Time
	CalculationMethod CalculationMethod
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
}

// MonthlyValidation marks that a human validated a month. It exists exactly
// while the matching summary row has is_validated = true; the invalidation
// cascade keeps the two in lockstep.
type MonthlyValidation struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	ValidatedBy string
	ValidatedAt time.Time
}

// ValidationCheck is the answer to "can this month be validated right now".
type ValidationCheck struct {
	CanValidate  bool `json:"can_validate"`
	PendingCount int  `json:"pending_count"`
}
