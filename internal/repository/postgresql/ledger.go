package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/ledger"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ledgerRepository struct {
	db *database.DB
}

// SumOvertimeHours implements ledger.LedgerRepository.
func (r *ledgerRepository) SumOvertimeHours(ctx context.Context, employeeID string, year int, month time.Month) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM overtime_entries
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, monthStart, monthStart.AddDate(0, 1, 0)).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to sum overtime hours: %w", err)
	}

	return total, nil
}

// ListWageAdjustments implements ledger.LedgerRepository.
func (r *ledgerRepository) ListWageAdjustments(ctx context.Context, employeeID string, year int, month time.Month) ([]ledger.WageAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	query := `
		SELECT id, employee_id, date, kind, amount, note, created_at, updated_at
		FROM wage_adjustments
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list wage adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []ledger.WageAdjustment
	for rows.Next() {
		var a ledger.WageAdjustment
		var kind string
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &kind, &a.Amount, &a.Note, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wage adjustment: %w", err)
		}
		a.Kind = ledger.AdjustmentKind(kind)
		adjustments = append(adjustments, a)
	}

	return adjustments, nil
}

// CreateOvertime implements ledger.LedgerRepository.
func (r *ledgerRepository) CreateOvertime(ctx context.Context, e ledger.OvertimeEntry) (ledger.OvertimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	// Lock the employee-day's existing entries so two writers merging into
	// the same accumulator serialize.
	lockQuery := `
		SELECT id FROM overtime_entries
		WHERE employee_id = $1 AND date = $2
		FOR UPDATE
	`
	rows, err := q.Query(ctx, lockQuery, e.EmployeeID, e.Date)
	if err != nil {
		return ledger.OvertimeEntry{}, fmt.Errorf("failed to lock overtime entries: %w", err)
	}
	rows.Close()

	query := `
		INSERT INTO overtime_entries (employee_id, date, hours, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query, e.EmployeeID, e.Date, e.Hours, e.Reason).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return ledger.OvertimeEntry{}, fmt.Errorf("failed to create overtime entry: %w", err)
	}

	return e, nil
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepository{db: db}
}
