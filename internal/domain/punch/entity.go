package punch

import "time"

// RawPunch is a single clock event as delivered by the ingestion
// collaborator. EmployeeName is free text; EmployeeID is resolved once at
// ingestion time and persisted, so classification never re-matches strings.
// A nil EmployeeID means no known employee matched at ingestion.
type RawPunch struct {
	ID           string
	EmployeeName string
	EmployeeID   *string
	PunchTime    time.Time
	Source       string
	Synthetic    bool
	CreatedAt    time.Time
}

// Punch sources.
const (
	SourceDevice     = "device"
	SourceUpload     = "upload"
	SourceCorrection = "correction"
)

// DaySummary condenses one employee-day of punches for the classifier.
// With a single punch, Entry or Exit is set by the noon heuristic; with two
// or more, Entry is the earliest and Exit the latest punch time.
type DaySummary struct {
	Count int
	Entry *time.Time
	Exit  *time.Time
}

// Summarize applies the entry/exit rules to a day's punch times.
// A lone punch before local noon is treated as an entry, otherwise as an
// exit. Shift workers whose single punch falls on the wrong side of noon are
// misread by this rule; it is kept as-is because downstream treatments
// depend on it.
func Summarize(times []time.Time) DaySummary {
	switch len(times) {
	case 0:
		return DaySummary{}
	case 1:
		t := times[0]
		if t.Hour() < 12 {
			return DaySummary{Count: 1, Entry: &t}
		}
		return DaySummary{Count: 1, Exit: &t}
	}

	entry, exit := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(entry) {
			entry = t
		}
		if t.After(exit) {
			exit = t
		}
	}
	return DaySummary{Count: len(times), Entry: &entry, Exit: &exit}
}
