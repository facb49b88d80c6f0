package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overrideRepository struct {
	db *database.DB
}

const overrideColumns = `id, employee_id, date, kind, details, exception_id, created_by, created_at, updated_at`

func scanOverride(row pgx.Row) (override.Override, error) {
	var o override.Override
	var kind string
	var details []byte

	err := row.Scan(
		&o.ID, &o.EmployeeID, &o.Date, &kind, &details, &o.ExceptionID,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return override.Override{}, err
	}

	o.Kind = override.Kind(kind)
	o.Details, err = override.DecodeDetails(o.Kind, details)
	if err != nil {
		return override.Override{}, err
	}

	return o, nil
}

// Upsert implements override.OverrideRepository.
func (r *overrideRepository) Upsert(ctx context.Context, o override.Override) (override.Override, error) {
	q := GetQuerier(ctx, r.db)

	details, err := o.Details.Encode()
	if err != nil {
		return override.Override{}, fmt.Errorf("failed to encode override details: %w", err)
	}

	// The conflict path replaces kind and details in place so the row id,
	// and any exception back-reference to it, survives the rewrite.
	query := `
		INSERT INTO overrides (employee_id, date, kind, details, exception_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			kind = EXCLUDED.kind,
			details = EXCLUDED.details,
			exception_id = COALESCE(EXCLUDED.exception_id, overrides.exception_id),
			created_by = EXCLUDED.created_by,
			updated_at = NOW()
		RETURNING ` + overrideColumns

	stored, err := scanOverride(q.QueryRow(ctx, query,
		o.EmployeeID, o.Date, string(o.Kind), details, o.ExceptionID, o.CreatedBy,
	))
	if err != nil {
		return override.Override{}, fmt.Errorf("failed to upsert override: %w", err)
	}

	return stored, nil
}

// GetByEmployeeAndDate implements override.OverrideRepository.
func (r *overrideRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*override.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overrideColumns + `
		FROM overrides
		WHERE employee_id = $1 AND date = $2
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	o, err := scanOverride(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get override: %w", err)
	}

	return &o, nil
}

// GetForMonth implements override.OverrideRepository.
func (r *overrideRepository) GetForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int]override.Override, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	query := `
		SELECT ` + overrideColumns + `
		FROM overrides
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to get month overrides: %w", err)
	}
	defer rows.Close()

	byDay := make(map[int]override.Override)
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		byDay[o.Date.Day()] = o
	}

	return byDay, nil
}

// DeleteByEmployeeAndDate implements override.OverrideRepository.
func (r *overrideRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`DELETE FROM overrides WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	)
	if err != nil {
		return fmt.Errorf("failed to delete override: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return override.ErrOverrideNotFound
	}

	return nil
}

// DeleteByExceptionID implements override.OverrideRepository.
func (r *overrideRepository) DeleteByExceptionID(ctx context.Context, exceptionID string) ([]override.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM overrides
		WHERE exception_id = $1
		RETURNING ` + overrideColumns

	rows, err := q.Query(ctx, query, exceptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete overrides by exception: %w", err)
	}
	defer rows.Close()

	var deleted []override.Override
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deleted override: %w", err)
		}
		deleted = append(deleted, o)
	}

	return deleted, nil
}

// DeleteExceptionDayEditsInMonth implements override.OverrideRepository.
func (r *overrideRepository) DeleteExceptionDayEditsInMonth(ctx context.Context, employeeID string, year int, month time.Month) (int64, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	query := `
		DELETE FROM overrides
		WHERE employee_id = $1
		  AND kind = $2
		  AND exception_id IS NOT NULL
		  AND date >= $3
		  AND date < $4
	`

	commandTag, err := q.Exec(ctx, query,
		employeeID, string(override.KindDayEdit), monthStart, monthStart.AddDate(0, 1, 0),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete exception day edits: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func NewOverrideRepository(db *database.DB) override.OverrideRepository {
	return &overrideRepository{db: db}
}
