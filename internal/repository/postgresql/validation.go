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

type validationRepository struct {
	db *database.DB
}

// Upsert implements summary.ValidationRepository.
func (r *validationRepository) Upsert(ctx context.Context, v summary.MonthlyValidation) (summary.MonthlyValidation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_validations (employee_id, month, year, validated_by, validated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			validated_by = EXCLUDED.validated_by,
			validated_at = EXCLUDED.validated_at
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		v.EmployeeID, v.Month, v.Year, v.ValidatedBy, v.ValidatedAt,
	).Scan(&v.ID)

	if err != nil {
		return summary.MonthlyValidation{}, fmt.Errorf("failed to upsert monthly validation: %w", err)
	}

	return v, nil
}

// Delete implements summary.ValidationRepository.
func (r *validationRepository) Delete(ctx context.Context, employeeID string, year int, month time.Month) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`DELETE FROM monthly_validations WHERE employee_id = $1 AND year = $2 AND month = $3`,
		employeeID, year, int(month),
	); err != nil {
		return fmt.Errorf("failed to delete monthly validation: %w", err)
	}

	return nil
}

// Get implements summary.ValidationRepository.
func (r *validationRepository) Get(ctx context.Context, employeeID string, year int, month time.Month) (*summary.MonthlyValidation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, validated_by, validated_at
		FROM monthly_validations
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	var v summary.MonthlyValidation
	err := q.QueryRow(ctx, query, employeeID, year, int(month)).Scan(
		&v.ID, &v.EmployeeID, &v.Month, &v.Year, &v.ValidatedBy, &v.ValidatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly validation: %w", err)
	}

	return &v, nil
}

func NewValidationRepository(db *database.DB) summary.ValidationRepository {
	return &validationRepository{db: db}
}
