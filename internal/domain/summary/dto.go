package summary

import (
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"
)

type MonthRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkValidateRequest struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	EmployeeIDs  []string `json:"employee_ids,omitempty"`
	DepartmentID *string  `json:"department_id,omitempty"`
}

func (r *BulkValidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkItemResult reports one employee's outcome inside a bulk validation.
// A blocked or failed item never aborts the rest of the batch.
type BulkItemResult struct {
	EmployeeID   string `json:"employee_id"`
	Validated    bool   `json:"validated"`
	PendingCount int    `json:"pending_count,omitempty"`
	Error        string `json:"error,omitempty"`
}

type BulkValidateResult struct {
	ValidatedCount int              `json:"validated_count"`
	Items          []BulkItemResult `json:"items"`
}

type MonthlySummaryResponse struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	ScheduledDays     int     `json:"scheduled_days"`
	WorkedDays        int     `json:"worked_days"`
	AbsenceDays       int     `json:"absence_days"`
	PendingDays       int     `json:"pending_days"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyMinutes      int     `json:"early_minutes"`
	OvertimeHours     string  `json:"overtime_hours"`
	WageChanges       string  `json:"wage_changes"`
	IsValidated       bool    `json:"is_validated"`
	ValidatedBy       *string `json:"validated_by,omitempty"`
	ValidatedAt       *string `json:"validated_at,omitempty"`
	CalculationMethod string  `json:"calculation_method"`
}
