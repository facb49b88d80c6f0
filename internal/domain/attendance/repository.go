package attendance

import (
	"context"
	"time"
)

type DayRecordRepository interface {
	// Save upserts the day record for (employee, date)
	Save(ctx context.Context, rec DayRecord) (DayRecord, error)

	// GetByEmployeeAndDate returns the day record, or nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DayRecord, error)

	// DeleteByEmployeeAndDate removes the day record; absence is not an
	// error during a revert
	DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error
}
