package attendance

import (
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"
)

type DayClassificationResponse struct {
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"`
	Status       DayStatus `json:"status"`
	LateMinutes  int       `json:"late_minutes"`
	EarlyMinutes int       `json:"early_minutes"`
	PunchCount   int       `json:"punch_count"`
	EntryTime    *string   `json:"entry_time,omitempty"`
	ExitTime     *string   `json:"exit_time,omitempty"`
	HasOverride  bool      `json:"has_override"`
}

// SaveDayRequest is a manual day edit: corrected times plus a justification.
// Saving writes both the day record and a day_edit override.
type SaveDayRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	EntryTime     *string `json:"entry_time,omitempty"` // "15:04"
	ExitTime      *string `json:"exit_time,omitempty"`  // "15:04"
	Justification string  `json:"justification,omitempty"`
}

func (r *SaveDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.EntryTime == nil && r.ExitTime == nil {
		errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "at least one of entry_time or exit_time is required"})
	}
	if r.EntryTime != nil && !validator.IsValidClockTime(*r.EntryTime) {
		errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "entry_time must be in HH:MM format"})
	}
	if r.ExitTime != nil && !validator.IsValidClockTime(*r.ExitTime) {
		errs = append(errs, validator.ValidationError{Field: "exit_time", Message: "exit_time must be in HH:MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RevertDayRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *RevertDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TreatPendingRequest applies a status override to a pending day.
type TreatPendingRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Action     string `json:"action"` // full_day, half_day or refuse
	Reason     string `json:"reason,omitempty"`
}

func (r *TreatPendingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	switch r.Action {
	case "full_day", "half_day", "refuse":
	default:
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action must be full_day, half_day or refuse"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
