package ledger

import (
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordOvertimeRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Hours      string `json:"hours"`
	Reason     string `json:"reason,omitempty"`
}

func (r *RecordOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	hours, err := decimal.NewFromString(r.Hours)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be a decimal number"})
	} else if hours.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Hours      string `json:"hours"`
	Reason     string `json:"reason,omitempty"`
}
