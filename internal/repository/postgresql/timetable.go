package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timetableRepository struct {
	db *database.DB
}

// GetAssignedIntervals implements schedule.TimetableRepository.
func (r *timetableRepository) GetAssignedIntervals(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.AssignedInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.timetable_id, i.weekday, i.start_time, i.end_time, i.break_minutes,
			   i.created_at, i.updated_at,
			   a.effective_from, a.effective_to
		FROM timetable_assignments a
		JOIN timetable_intervals i ON i.timetable_id = a.timetable_id
		WHERE a.employee_id = $1
		  AND a.effective_from <= $3
		  AND a.effective_to >= $2
		ORDER BY i.weekday, i.start_time
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned intervals: %w", err)
	}
	defer rows.Close()

	var intervals []schedule.AssignedInterval
	for rows.Next() {
		var ai schedule.AssignedInterval
		err := rows.Scan(
			&ai.ID, &ai.TimetableID, &ai.Weekday, &ai.StartTime, &ai.EndTime, &ai.BreakMinutes,
			&ai.CreatedAt, &ai.UpdatedAt,
			&ai.EffectiveFrom, &ai.EffectiveTo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assigned interval: %w", err)
		}
		intervals = append(intervals, ai)
	}

	return intervals, nil
}

// GetByID implements schedule.TimetableRepository.
func (r *timetableRepository) GetByID(ctx context.Context, id string) (schedule.Timetable, []schedule.Interval, error) {
	q := GetQuerier(ctx, r.db)

	var t schedule.Timetable
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM timetables
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Timetable{}, nil, schedule.ErrTimetableNotFound
		}
		return schedule.Timetable{}, nil, fmt.Errorf("failed to get timetable: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, timetable_id, weekday, start_time, end_time, break_minutes, created_at, updated_at
		FROM timetable_intervals
		WHERE timetable_id = $1
		ORDER BY weekday, start_time
	`, id)
	if err != nil {
		return schedule.Timetable{}, nil, fmt.Errorf("failed to get timetable intervals: %w", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		err := rows.Scan(
			&iv.ID, &iv.TimetableID, &iv.Weekday, &iv.StartTime, &iv.EndTime, &iv.BreakMinutes,
			&iv.CreatedAt, &iv.UpdatedAt,
		)
		if err != nil {
			return schedule.Timetable{}, nil, fmt.Errorf("failed to scan timetable interval: %w", err)
		}
		intervals = append(intervals, iv)
	}

	return t, intervals, nil
}

func NewTimetableRepository(db *database.DB) schedule.TimetableRepository {
	return &timetableRepository{db: db}
}
