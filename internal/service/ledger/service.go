package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/ledger"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/attendance-backend-go/internal/repository/postgresql"
	summaryService "github.com/clockwork-hr/attendance-backend-go/internal/service/summary"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type LedgerServiceImpl struct {
	db *database.DB
	ledger.LedgerRepository
	employee.EmployeeRepository
	cascade *summaryService.Cascade
}

// RecordOvertime implements ledger.LedgerService.
func (s *LedgerServiceImpl) RecordOvertime(ctx context.Context, req ledger.RecordOvertimeRequest) (ledger.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.OvertimeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return ledger.OvertimeResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ledger.OvertimeResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}
	hours, err := decimal.NewFromString(req.Hours)
	if err != nil {
		return ledger.OvertimeResponse{}, fmt.Errorf("failed to parse hours: %w", err)
	}

	var created ledger.OvertimeEntry

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.LedgerRepository.CreateOvertime(txCtx, ledger.OvertimeEntry{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Hours:      hours,
			Reason:     req.Reason,
		})
		if err != nil {
			return err
		}

		// Overtime feeds the monthly total, so a validated month goes stale.
		return s.cascade.InvalidateIfValidated(txCtx, req.EmployeeID, date)
	})
	if err != nil {
		return ledger.OvertimeResponse{}, err
	}

	return ledger.OvertimeResponse{
		ID:         created.ID,
		EmployeeID: created.EmployeeID,
		Date:       created.Date.Format("2006-01-02"),
		Hours:      created.Hours.StringFixed(2),
		Reason:     created.Reason,
	}, nil
}

func NewLedgerService(
	db *database.DB,
	ledgerRepo ledger.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
	cascade *summaryService.Cascade,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		db:                 db,
		LedgerRepository:   ledgerRepo,
		EmployeeRepository: employeeRepo,
		cascade:            cascade,
	}
}
