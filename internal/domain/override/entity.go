package override

import "time"

// Kind enum
type Kind string

const (
	KindStatusOverride Kind = "status_override"
	KindDayEdit        Kind = "day_edit"
	KindPunchAdd       Kind = "punch_add"
	KindLeave          Kind = "leave"
	KindHoliday        Kind = "holiday"
)

var KindValues = []string{
	string(KindStatusOverride),
	string(KindDayEdit),
	string(KindPunchAdd),
	string(KindLeave),
	string(KindHoliday),
}

// Override is the single correction record for one employee-day. At most
// one row exists per (employee, date); writes are upserts that keep the row
// identity stable so exception back-references stay valid.
type Override struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Kind        Kind
	Details     Details
	ExceptionID *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
