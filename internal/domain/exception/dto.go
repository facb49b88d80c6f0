package exception

import (
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateExceptionRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       Type    `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Payload    Payload `json:"payload"`
}

func (r *CreateExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	valid := false
	for _, v := range TypeValues {
		if string(r.Type) == v {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown exception type"})
	}

	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if validator.IsValidDate(r.StartDate) && validator.IsValidDate(r.EndDate) && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not precede start_date"})
	}

	// Type-specific payload requirements
	switch r.Type {
	case TypeMissingPunchFix:
		if r.Payload.PunchType == nil || (*r.Payload.PunchType != "entry" && *r.Payload.PunchType != "exit") {
			errs = append(errs, validator.ValidationError{Field: "payload.punch_type", Message: "punch_type must be entry or exit"})
		}
		if r.Payload.PunchTime == nil || !validator.IsValidClockTime(*r.Payload.PunchTime) {
			errs = append(errs, validator.ValidationError{Field: "payload.punch_time", Message: "punch_time must be in HH:MM format"})
		}
	case TypeLeaveRequest:
		if r.Payload.LeaveType == nil || validator.IsEmpty(*r.Payload.LeaveType) {
			errs = append(errs, validator.ValidationError{Field: "payload.leave_type", Message: "leave_type is required"})
		}
	case TypeHolidayAssignment:
		if r.Payload.HolidayName == nil || validator.IsEmpty(*r.Payload.HolidayName) {
			errs = append(errs, validator.ValidationError{Field: "payload.holiday_name", Message: "holiday_name is required"})
		}
	case TypeDayEdit:
		if r.Payload.EntryTime == nil && r.Payload.ExitTime == nil {
			errs = append(errs, validator.ValidationError{Field: "payload.entry_time", Message: "at least one of entry_time or exit_time is required"})
		}
		if r.Payload.EntryTime != nil && !validator.IsValidClockTime(*r.Payload.EntryTime) {
			errs = append(errs, validator.ValidationError{Field: "payload.entry_time", Message: "entry_time must be in HH:MM format"})
		}
		if r.Payload.ExitTime != nil && !validator.IsValidClockTime(*r.Payload.ExitTime) {
			errs = append(errs, validator.ValidationError{Field: "payload.exit_time", Message: "exit_time must be in HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExceptionResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Type       Type    `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     Status  `json:"status"`
	ReviewerID *string `json:"reviewer_id,omitempty"`
	ReviewedAt *string `json:"reviewed_at,omitempty"`
}
