package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dayRecordRepository struct {
	db *database.DB
}

// Save implements attendance.DayRecordRepository.
func (r *dayRecordRepository) Save(ctx context.Context, rec attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_records (employee_id, date, entry_time, exit_time, status, saved_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			entry_time = EXCLUDED.entry_time,
			exit_time = EXCLUDED.exit_time,
			status = EXCLUDED.status,
			saved_by = EXCLUDED.saved_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Date, rec.EntryTime, rec.ExitTime, string(rec.Status), rec.SavedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to save day record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, entry_time, exit_time, status, saved_by, created_at, updated_at
		FROM day_records
		WHERE employee_id = $1 AND date = $2
	`

	var rec attendance.DayRecord
	var status string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.EntryTime, &rec.ExitTime, &status,
		&rec.SavedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day record: %w", err)
	}

	rec.Status = attendance.DayStatus(status)
	return &rec, nil
}

// DeleteByEmployeeAndDate implements attendance.DayRecordRepository.
func (r *dayRecordRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`DELETE FROM day_records WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	); err != nil {
		return fmt.Errorf("failed to delete day record: %w", err)
	}

	return nil
}

func NewDayRecordRepository(db *database.DB) attendance.DayRecordRepository {
	return &dayRecordRepository{db: db}
}
