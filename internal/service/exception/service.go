package exception

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/exception"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/attendance-backend-go/internal/repository/postgresql"
	summaryService "github.com/clockwork-hr/attendance-backend-go/internal/service/summary"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type ExceptionServiceImpl struct {
	db *database.DB
	exception.ExceptionRepository
	override.OverrideRepository
	punch.PunchRepository
	employee.EmployeeRepository
	cascade *summaryService.Cascade

	runTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// Create implements exception.ExceptionService.
func (s *ExceptionServiceImpl) Create(ctx context.Context, req exception.CreateExceptionRequest) (exception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.ExceptionResponse{}, err
	}

	userID, err := actorFromContext(ctx)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return exception.ExceptionResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.ExceptionRepository.Create(ctx, exception.Exception{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  startDate,
		EndDate:    endDate,
		Payload:    req.Payload,
		Status:     exception.StatusPending,
		CreatedBy:  userID,
	})
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	return mapExceptionToResponse(created), nil
}

// Approve implements exception.ExceptionService. The exception row is
// locked, its payload is applied as one override per day of the range, and
// the status flips to approved, all inside one transaction.
func (s *ExceptionServiceImpl) Approve(ctx context.Context, id string) (exception.ExceptionResponse, error) {
	reviewerID, err := actorFromContext(ctx)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	var reviewed exception.Exception

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exc, err := s.ExceptionRepository.GetByID(txCtx, id, true)
		if err != nil {
			return err
		}
		if exc.Status != exception.StatusPending {
			return exception.ErrExceptionAlreadyProcessed
		}

		for date := exc.StartDate; !date.After(exc.EndDate); date = date.AddDate(0, 0, 1) {
			if err := s.applyDay(txCtx, exc, date, reviewerID); err != nil {
				return fmt.Errorf("failed to apply exception on %s: %w", date.Format("2006-01-02"), err)
			}
			if err := s.cascade.InvalidateIfValidated(txCtx, exc.EmployeeID, date); err != nil {
				return err
			}
		}

		if err := s.ExceptionRepository.UpdateStatus(txCtx, id, exception.StatusApproved, reviewerID); err != nil {
			return err
		}

		reviewed = exc
		reviewed.Status = exception.StatusApproved
		reviewed.ReviewerID = &reviewerID
		now := time.Now()
		reviewed.ReviewedAt = &now
		return nil
	})
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	slog.Info("exception approved",
		"exception_id", id,
		"employee_id", reviewed.EmployeeID,
		"type", string(reviewed.Type),
		"reviewer_id", reviewerID,
	)

	return mapExceptionToResponse(reviewed), nil
}

// applyDay writes the day's override for an approved exception and, for
// missing punch fixes, materializes the synthetic punch.
func (s *ExceptionServiceImpl) applyDay(ctx context.Context, exc exception.Exception, date time.Time, reviewerID string) error {
	details, err := detailsForDay(exc)
	if err != nil {
		return err
	}

	if exc.Type == exception.TypeDayEdit {
		existing, err := s.OverrideRepository.GetByEmployeeAndDate(ctx, exc.EmployeeID, date, true)
		if err != nil {
			return err
		}
		if existing != nil && existing.Kind != override.KindDayEdit && existing.Kind != override.KindStatusOverride {
			return override.ErrConflictingOverride
		}
	}

	ov := override.Override{
		EmployeeID:  exc.EmployeeID,
		Date:        date,
		Kind:        exc.Type.OverrideKind(),
		Details:     details,
		ExceptionID: &exc.ID,
		CreatedBy:   reviewerID,
	}
	if _, err := s.OverrideRepository.Upsert(ctx, ov); err != nil {
		return err
	}

	if exc.Type == exception.TypeMissingPunchFix {
		return s.materializePunch(ctx, exc, date)
	}
	return nil
}

// materializePunch inserts the correction-sourced punch a missing_punch_fix
// stands for, so punch-count rules see it. Skipped when a synthetic punch
// already exists for the day, keeping approval over overlapping ranges
// idempotent.
func (s *ExceptionServiceImpl) materializePunch(ctx context.Context, exc exception.Exception, date time.Time) error {
	exists, err := s.PunchRepository.HasSyntheticForDay(ctx, exc.EmployeeID, date)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, exc.EmployeeID)
	if err != nil {
		return err
	}

	clock, _ := time.Parse("15:04", *exc.Payload.PunchTime)
	punchTime := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location())

	employeeID := exc.EmployeeID
	_, err = s.PunchRepository.Create(ctx, punch.RawPunch{
		EmployeeName: emp.FirstName + " " + emp.LastName,
		EmployeeID:   &employeeID,
		PunchTime:    punchTime,
		Source:       punch.SourceCorrection,
		Synthetic:    true,
	})
	return err
}

// detailsForDay builds the override details an exception's payload stands
// for. The payload was validated at creation; missing fields here mean the
// row was tampered with.
func detailsForDay(exc exception.Exception) (override.Details, error) {
	switch exc.Type {
	case exception.TypeMissingPunchFix:
		if exc.Payload.PunchType == nil || exc.Payload.PunchTime == nil {
			return override.Details{}, exception.ErrInvalidPayload
		}
		clock, err := time.Parse("15:04", *exc.Payload.PunchTime)
		if err != nil {
			return override.Details{}, exception.ErrInvalidPayload
		}
		return override.Details{PunchAdd: &override.PunchAddDetails{
			PunchType: *exc.Payload.PunchType,
			Time:      clock,
		}}, nil

	case exception.TypeLeaveRequest:
		if exc.Payload.LeaveType == nil {
			return override.Details{}, exception.ErrInvalidPayload
		}
		return override.Details{Leave: &override.LeaveDetails{
			LeaveType: *exc.Payload.LeaveType,
		}}, nil

	case exception.TypeHolidayAssignment:
		if exc.Payload.HolidayName == nil {
			return override.Details{}, exception.ErrInvalidPayload
		}
		return override.Details{Holiday: &override.HolidayDetails{
			HolidayName: *exc.Payload.HolidayName,
		}}, nil

	case exception.TypeDayEdit:
		if exc.Payload.EntryTime == nil && exc.Payload.ExitTime == nil {
			return override.Details{}, exception.ErrInvalidPayload
		}
		d := &override.DayEditDetails{
			EntryTime: exc.Payload.EntryTime,
			ExitTime:  exc.Payload.ExitTime,
		}
		if exc.Payload.Justification != nil {
			d.Justification = *exc.Payload.Justification
		}
		return override.Details{DayEdit: d}, nil
	}

	return override.Details{}, exception.ErrInvalidPayload
}

// Reject implements exception.ExceptionService.
func (s *ExceptionServiceImpl) Reject(ctx context.Context, id string) (exception.ExceptionResponse, error) {
	reviewerID, err := actorFromContext(ctx)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	var reviewed exception.Exception

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exc, err := s.ExceptionRepository.GetByID(txCtx, id, true)
		if err != nil {
			return err
		}
		if exc.Status != exception.StatusPending {
			return exception.ErrExceptionAlreadyProcessed
		}

		if err := s.ExceptionRepository.UpdateStatus(txCtx, id, exception.StatusRejected, reviewerID); err != nil {
			return err
		}

		reviewed = exc
		reviewed.Status = exception.StatusRejected
		reviewed.ReviewerID = &reviewerID
		now := time.Now()
		reviewed.ReviewedAt = &now
		return nil
	})
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	return mapExceptionToResponse(reviewed), nil
}

// Delete implements exception.ExceptionService. Overrides the exception
// produced are removed along with the synthetic punches a missing_punch_fix
// materialized, so the days fall back to punch-derived truth; each affected
// month is invalidated.
func (s *ExceptionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exc, err := s.ExceptionRepository.GetByID(txCtx, id, true)
		if err != nil {
			return err
		}

		removed, err := s.OverrideRepository.DeleteByExceptionID(txCtx, id)
		if err != nil {
			return err
		}

		var punchesRemoved int64
		if exc.Type == exception.TypeMissingPunchFix {
			punchesRemoved, err = s.PunchRepository.DeleteSyntheticInRange(txCtx, exc.EmployeeID, exc.StartDate, exc.EndDate)
			if err != nil {
				return err
			}
		}

		for _, ov := range removed {
			if err := s.cascade.InvalidateIfValidated(txCtx, ov.EmployeeID, ov.Date); err != nil {
				return err
			}
		}

		if err := s.ExceptionRepository.Delete(txCtx, id); err != nil {
			return err
		}

		slog.Info("exception deleted",
			"exception_id", id,
			"employee_id", exc.EmployeeID,
			"overrides_removed", len(removed),
			"punches_removed", punchesRemoved,
		)
		return nil
	})
}

func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func mapExceptionToResponse(e exception.Exception) exception.ExceptionResponse {
	resp := exception.ExceptionResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Type:       e.Type,
		StartDate:  e.StartDate.Format("2006-01-02"),
		EndDate:    e.EndDate.Format("2006-01-02"),
		Status:     e.Status,
		ReviewerID: e.ReviewerID,
	}
	if e.ReviewedAt != nil {
		formatted := e.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &formatted
	}
	return resp
}

func NewExceptionService(
	db *database.DB,
	exceptionRepo exception.ExceptionRepository,
	overrideRepo override.OverrideRepository,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	cascade *summaryService.Cascade,
) exception.ExceptionService {
	s := &ExceptionServiceImpl{
		db:                  db,
		ExceptionRepository: exceptionRepo,
		OverrideRepository:  overrideRepo,
		PunchRepository:     punchRepo,
		EmployeeRepository:  employeeRepo,
		cascade:             cascade,
	}
	s.runTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}
