package exception

import (
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
)

// Type enum
type Type string

const (
	TypeMissingPunchFix   Type = "missing_punch_fix"
	TypeLeaveRequest      Type = "leave_request"
	TypeHolidayAssignment Type = "holiday_assignment"
	TypeDayEdit           Type = "day_edit"
)

var TypeValues = []string{
	string(TypeMissingPunchFix),
	string(TypeLeaveRequest),
	string(TypeHolidayAssignment),
	string(TypeDayEdit),
}

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Payload carries the type-specific request content. Approval turns it into
// override details, one per calendar day of [StartDate, EndDate].
type Payload struct {
	// missing_punch_fix
	PunchType *string `json:"punch_type,omitempty"` // "entry" or "exit"
	PunchTime *string `json:"punch_time,omitempty"` // "15:04"

	// leave_request
	LeaveType *string `json:"leave_type,omitempty"`

	// holiday_assignment
	HolidayName *string `json:"holiday_name,omitempty"`

	// day_edit
	EntryTime     *string `json:"entry_time,omitempty"` // "15:04"
	ExitTime      *string `json:"exit_time,omitempty"`  // "15:04"
	Justification *string `json:"justification,omitempty"`
}

type Exception struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Payload    Payload
	Status     Status
	ReviewerID *string
	ReviewedAt *time.Time
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OverrideKind maps an exception type to the override kind its approval
// writes.
func (t Type) OverrideKind() override.Kind {
	switch t {
	case TypeMissingPunchFix:
		return override.KindPunchAdd
	case TypeLeaveRequest:
		return override.KindLeave
	case TypeHolidayAssignment:
		return override.KindHoliday
	case TypeDayEdit:
		return override.KindDayEdit
	}
	return ""
}
