package attendance

import "time"

// DayStatus enum
type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusAbsent  DayStatus = "absent"
	StatusPending DayStatus = "pending"
	StatusDayOff  DayStatus = "day_off"
)

// DayClassification is the classifier output for one employee-day.
// LateMinutes and EarlyMinutes are zero whenever an override applies.
type DayClassification struct {
	Status       DayStatus
	LateMinutes  int
	EarlyMinutes int

	// Overridden is true when an override decided the status; timing
	// penalties are suppressed for such days.
	Overridden bool

	// Scheduled is true when at least one interval applied to the day.
	Scheduled bool
}

// DayRecord is the persisted day-level attendance row written by a
// day-save. Reverting a day removes it together with the day's override.
type DayRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	EntryTime  *time.Time
	ExitTime   *time.Time
	Status     DayStatus
	SavedBy    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
