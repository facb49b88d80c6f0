package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type punchRepository struct {
	db *database.DB
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, p punch.RawPunch) (punch.RawPunch, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO raw_punches (id, employee_name, employee_id, punch_time, source, synthetic)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeName, p.EmployeeID, p.PunchTime, p.Source, p.Synthetic,
	).Scan(&p.CreatedAt)

	if err != nil {
		return punch.RawPunch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepository) GetByID(ctx context.Context, id string) (punch.RawPunch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, employee_id, punch_time, source, synthetic, created_at
		FROM raw_punches
		WHERE id = $1
	`

	var p punch.RawPunch
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeName, &p.EmployeeID, &p.PunchTime, &p.Source, &p.Synthetic, &p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.RawPunch{}, punch.ErrPunchNotFound
		}
		return punch.RawPunch{}, fmt.Errorf("failed to get punch by ID: %w", err)
	}

	return p, nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM raw_punches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

// TimesForDay implements punch.PunchRepository.
func (r *punchRepository) TimesForDay(ctx context.Context, employeeID string, date time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT punch_time
		FROM raw_punches
		WHERE employee_id = $1
		  AND punch_time >= $2
		  AND punch_time < $3
		ORDER BY punch_time
	`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	rows, err := q.Query(ctx, query, employeeID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to get punch times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan punch time: %w", err)
		}
		times = append(times, t)
	}

	return times, nil
}

// TimesForMonth implements punch.PunchRepository.
func (r *punchRepository) TimesForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int][]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	query := `
		SELECT punch_time
		FROM raw_punches
		WHERE employee_id = $1
		  AND punch_time >= $2
		  AND punch_time < $3
		ORDER BY punch_time
	`

	rows, err := q.Query(ctx, query, employeeID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to get month punch times: %w", err)
	}
	defer rows.Close()

	byDay := make(map[int][]time.Time)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan punch time: %w", err)
		}
		byDay[t.Day()] = append(byDay[t.Day()], t)
	}

	return byDay, nil
}

// ListUnresolved implements punch.PunchRepository.
func (r *punchRepository) ListUnresolved(ctx context.Context, limit int) ([]punch.RawPunch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, employee_id, punch_time, source, synthetic, created_at
		FROM raw_punches
		WHERE employee_id IS NULL
		ORDER BY punch_time
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.RawPunch
	for rows.Next() {
		var p punch.RawPunch
		err := rows.Scan(
			&p.ID, &p.EmployeeName, &p.EmployeeID, &p.PunchTime, &p.Source, &p.Synthetic, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, nil
}

// AssignEmployee implements punch.PunchRepository.
func (r *punchRepository) AssignEmployee(ctx context.Context, punchID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE raw_punches SET employee_id = $1 WHERE id = $2`,
		employeeID, punchID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign employee to punch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

// HasSyntheticForDay implements punch.PunchRepository.
func (r *punchRepository) HasSyntheticForDay(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM raw_punches
			WHERE employee_id = $1
			  AND synthetic = TRUE
			  AND punch_time >= $2
			  AND punch_time < $3
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, dayStart, dayStart.AddDate(0, 0, 1)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check synthetic punch: %w", err)
	}

	return exists, nil
}

// DeleteSyntheticInRange implements punch.PunchRepository.
func (r *punchRepository) DeleteSyntheticInRange(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	rangeStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	rangeEnd := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)

	query := `
		DELETE FROM raw_punches
		WHERE employee_id = $1
		  AND synthetic = TRUE
		  AND punch_time >= $2
		  AND punch_time < $3
	`

	commandTag, err := q.Exec(ctx, query, employeeID, rangeStart, rangeEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to delete synthetic punches: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
