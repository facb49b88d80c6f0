package schedule

import "time"

type Timetable struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval is one scheduled block of work within a timetable. StartTime and
// EndTime carry only the time-of-day component (zero date).
type Interval struct {
	ID           string
	TimetableID  string
	Weekday      int // 1=Monday, ..., 7=Sunday
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Assignment binds an employee to a timetable for a date range, inclusive
// on both ends.
type Assignment struct {
	ID            string
	EmployeeID    string
	TimetableID   string
	EffectiveFrom time.Time
	EffectiveTo   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AssignedInterval is an Interval joined with the assignment window it is
// reachable through. The resolver filters these per date.
type AssignedInterval struct {
	Interval
	EffectiveFrom time.Time
	EffectiveTo   time.Time
}

// CanonicalWeekday maps a date to the 1=Monday..7=Sunday numbering used
// across the whole engine.
func CanonicalWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
