package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for per-day attendance
type AttendanceService interface {
	// ClassifyDay computes the status and timing deltas for one
	// employee-day from schedule, punches and override
	ClassifyDay(ctx context.Context, employeeID string, date time.Time) (DayClassificationResponse, error)

	// SaveDay applies a manual day edit: persists the day record and a
	// day_edit override, invalidating the month if it was validated
	SaveDay(ctx context.Context, req SaveDayRequest) (DayClassificationResponse, error)

	// RevertDay removes the day's override and day record, restoring
	// punch-derived truth
	RevertDay(ctx context.Context, req RevertDayRequest) error

	// TreatPending resolves an ambiguous single-punch day with a
	// full_day, half_day or refuse decision
	TreatPending(ctx context.Context, req TreatPendingRequest) (DayClassificationResponse, error)
}
