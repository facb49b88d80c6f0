package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/exception"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type exceptionRepository struct {
	db *database.DB
}

// Create implements exception.ExceptionRepository.
func (r *exceptionRepository) Create(ctx context.Context, e exception.Exception) (exception.Exception, error) {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return exception.Exception{}, fmt.Errorf("failed to encode exception payload: %w", err)
	}

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO exceptions (id, employee_id, type, start_date, end_date, payload, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		e.ID, e.EmployeeID, string(e.Type), e.StartDate, e.EndDate, payload, string(e.Status), e.CreatedBy,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return exception.Exception{}, fmt.Errorf("failed to create exception: %w", err)
	}

	return e, nil
}

// GetByID implements exception.ExceptionRepository.
func (r *exceptionRepository) GetByID(ctx context.Context, id string, forUpdate bool) (exception.Exception, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, payload, status,
			   reviewer_id, reviewed_at, created_by, created_at, updated_at
		FROM exceptions
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var e exception.Exception
	var typ, status string
	var payload []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeID, &typ, &e.StartDate, &e.EndDate, &payload, &status,
		&e.ReviewerID, &e.ReviewedAt, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.Exception{}, exception.ErrExceptionNotFound
		}
		return exception.Exception{}, fmt.Errorf("failed to get exception: %w", err)
	}

	e.Type = exception.Type(typ)
	e.Status = exception.Status(status)
	if err := json.Unmarshal(payload, &e.Payload); err != nil {
		return exception.Exception{}, fmt.Errorf("failed to decode exception payload: %w", err)
	}

	return e, nil
}

// UpdateStatus implements exception.ExceptionRepository.
func (r *exceptionRepository) UpdateStatus(ctx context.Context, id string, status exception.Status, reviewerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE exceptions
		SET status = $1, reviewer_id = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, string(status), reviewerID, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.ErrExceptionNotFound
		}
		return fmt.Errorf("failed to update exception status: %w", err)
	}

	return nil
}

// Delete implements exception.ExceptionRepository.
func (r *exceptionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM exceptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exception: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return exception.ErrExceptionNotFound
	}

	return nil
}

func NewExceptionRepository(db *database.DB) exception.ExceptionRepository {
	return &exceptionRepository{db: db}
}
