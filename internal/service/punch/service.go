package punch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/attendance-backend-go/internal/repository/postgresql"
	summaryService "github.com/clockwork-hr/attendance-backend-go/internal/service/summary"
	"github.com/jackc/pgx/v5"
)

type PunchServiceImpl struct {
	db *database.DB
	punch.PunchRepository
	employee.EmployeeRepository
	cascade *summaryService.Cascade
}

// buildNameIndex maps every canonical name key to its employee id.
func buildNameIndex(employees []employee.Employee) map[string]string {
	index := make(map[string]string, len(employees)*2)
	for _, emp := range employees {
		for _, key := range punch.NameKeys(emp.FirstName, emp.LastName) {
			index[key] = emp.ID
		}
	}
	return index
}

// Ingest implements punch.PunchService.
func (s *PunchServiceImpl) Ingest(ctx context.Context, req punch.IngestPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	source := req.Source
	if source == "" {
		source = punch.SourceDevice
	}

	employees, err := s.EmployeeRepository.List(ctx, employee.Filter{})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to list employees for matching: %w", err)
	}
	index := buildNameIndex(employees)

	p := punch.RawPunch{
		EmployeeName: req.EmployeeName,
		PunchTime:    req.PunchTime,
		Source:       source,
	}
	if id, ok := index[punch.CanonicalName(req.EmployeeName)]; ok {
		p.EmployeeID = &id
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.PunchRepository.Create(txCtx, p)
		if err != nil {
			return err
		}
		p = created

		// A punch landing inside an already-validated month makes its
		// numbers stale.
		if p.EmployeeID != nil {
			if err := s.cascade.InvalidateIfValidated(txCtx, *p.EmployeeID, p.PunchTime); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}

	if p.EmployeeID == nil {
		slog.Warn("punch ingested without identity match", "employee_name", req.EmployeeName)
	}

	return mapPunchToResponse(p), nil
}

// Delete implements punch.PunchService.
func (s *PunchServiceImpl) Delete(ctx context.Context, id string) error {
	p, err := s.PunchRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Correction-sourced synthetic punches belong to the exception that
	// materialized them; deleting the exception removes them.
	if p.Synthetic || p.Source == punch.SourceCorrection {
		return punch.ErrDeleteNotPermitted
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.PunchRepository.Delete(txCtx, id); err != nil {
			return err
		}
		if p.EmployeeID != nil {
			if err := s.cascade.InvalidateIfValidated(txCtx, *p.EmployeeID, p.PunchTime); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResolveUnmatched implements punch.PunchService.
func (s *PunchServiceImpl) ResolveUnmatched(ctx context.Context) (int, error) {
	employees, err := s.EmployeeRepository.List(ctx, employee.Filter{})
	if err != nil {
		return 0, fmt.Errorf("failed to list employees for matching: %w", err)
	}
	index := buildNameIndex(employees)

	unresolved, err := s.PunchRepository.ListUnresolved(ctx, 1000)
	if err != nil {
		return 0, err
	}

	resolved := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, p := range unresolved {
			employeeID, ok := index[punch.CanonicalName(p.EmployeeName)]
			if !ok {
				continue
			}
			if err := s.PunchRepository.AssignEmployee(txCtx, p.ID, employeeID); err != nil {
				return err
			}
			// The punch now counts toward a day it previously did not.
			if err := s.cascade.InvalidateIfValidated(txCtx, employeeID, p.PunchTime); err != nil {
				return err
			}
			resolved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return resolved, nil
}

func mapPunchToResponse(p punch.RawPunch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:           p.ID,
		EmployeeName: p.EmployeeName,
		EmployeeID:   p.EmployeeID,
		PunchTime:    p.PunchTime.Format(time.RFC3339),
		Source:       p.Source,
		Synthetic:    p.Synthetic,
	}
}

func NewPunchService(
	db *database.DB,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	cascade *summaryService.Cascade,
) punch.PunchService {
	return &PunchServiceImpl{
		db:                 db,
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		cascade:            cascade,
	}
}
