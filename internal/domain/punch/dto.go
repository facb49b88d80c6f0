package punch

import (
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"
)

type IngestPunchRequest struct {
	EmployeeName string    `json:"employee_name"`
	PunchTime    time.Time `json:"punch_time"`
	Source       string    `json:"source,omitempty"`
}

func (r *IngestPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "employee_name is required"})
	}
	if r.PunchTime.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "punch_time", Message: "punch_time is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	PunchTime    string  `json:"punch_time"`
	Source       string  `json:"source"`
	Synthetic    bool    `json:"synthetic"`
}
