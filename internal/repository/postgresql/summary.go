package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/summary"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type summaryRepository struct {
	db *database.DB
}

const summaryColumns = `id, employee_id, year, month, scheduled_days, worked_days, absence_days,
	pending_days, late_minutes, early_minutes, overtime_hours, wage_changes,
	is_validated, validated_by, validated_at, calculation_method, created_at, updated_at`

func scanSummary(row pgx.Row) (summary.MonthlySummary, error) {
	var s summary.MonthlySummary
	var method string

	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Year, &s.Month, &s.ScheduledDays, &s.WorkedDays, &s.AbsenceDays,
		&s.PendingDays, &s.LateMinutes, &s.EarlyMinutes, &s.OvertimeHours, &s.WageChanges,
		&s.IsValidated, &s.ValidatedBy, &s.ValidatedAt, &method, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	s.CalculationMethod = summary.CalculationMethod(method)
	return s, nil
}

// GetByEmployeeAndMonth implements summary.SummaryRepository.
func (r *summaryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month, forUpdate bool) (*summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM monthly_summaries
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	s, err := scanSummary(q.QueryRow(ctx, query, employeeID, year, int(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return &s, nil
}

// Upsert implements summary.SummaryRepository.
func (r *summaryRepository) Upsert(ctx context.Context, s summary.MonthlySummary) (summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_summaries (
			employee_id, year, month, scheduled_days, worked_days, absence_days,
			pending_days, late_minutes, early_minutes, overtime_hours, wage_changes,
			is_validated, validated_by, validated_at, calculation_method
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (employee_id, year, month) DO UPDATE SET
			scheduled_days = EXCLUDED.scheduled_days,
			worked_days = EXCLUDED.worked_days,
			absence_days = EXCLUDED.absence_days,
			pending_days = EXCLUDED.pending_days,
			late_minutes = EXCLUDED.late_minutes,
			early_minutes = EXCLUDED.early_minutes,
			overtime_hours = EXCLUDED.overtime_hours,
			wage_changes = EXCLUDED.wage_changes,
			is_validated = EXCLUDED.is_validated,
			validated_by = EXCLUDED.validated_by,
			validated_at = EXCLUDED.validated_at,
			calculation_method = EXCLUDED.calculation_method,
			updated_at = NOW()
		RETURNING ` + summaryColumns

	stored, err := scanSummary(q.QueryRow(ctx, query,
		s.EmployeeID, s.Year, s.Month, s.ScheduledDays, s.WorkedDays, s.AbsenceDays,
		s.PendingDays, s.LateMinutes, s.EarlyMinutes, s.OvertimeHours, s.WageChanges,
		s.IsValidated, s.ValidatedBy, s.ValidatedAt, string(s.CalculationMethod),
	))
	if err != nil {
		return summary.MonthlySummary{}, fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return stored, nil
}

// MarkCalculated implements summary.SummaryRepository.
func (r *summaryRepository) MarkCalculated(ctx context.Context, employeeID string, year int, month time.Month) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_summaries
		SET is_validated = FALSE,
			validated_by = NULL,
			validated_at = NULL,
			calculation_method = $1,
			updated_at = NOW()
		WHERE employee_id = $2 AND year = $3 AND month = $4
	`

	if _, err := q.Exec(ctx, query, string(summary.MethodCalculated), employeeID, year, int(month)); err != nil {
		return fmt.Errorf("failed to mark summary calculated: %w", err)
	}

	return nil
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}
