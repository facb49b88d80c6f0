package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/ledger"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/summary"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type SummaryServiceImpl struct {
	db       *database.DB
	resolver schedule.ResolverService
	punch.PunchRepository
	override.OverrideRepository
	settings.SettingsRepository
	summary.SummaryRepository
	summary.ValidationRepository
	ledger.LedgerRepository
	employee.EmployeeRepository

	runTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// aggregate recomputes one employee-month from its inputs: resolved
// schedule, punches and overrides per day through the classifier, plus the
// overtime and wage-adjustment ledgers. Nothing is persisted here.
func (s *SummaryServiceImpl) aggregate(ctx context.Context, employeeID string, year int, month time.Month) (summary.MonthlySummary, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	intervals, err := s.resolver.MonthIntervals(ctx, employeeID, year, month)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	times, err := s.PunchRepository.TimesForMonth(ctx, employeeID, year, month)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	overrides, err := s.OverrideRepository.GetForMonth(ctx, employeeID, year, month)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	result := summary.MonthlySummary{
		EmployeeID:        employeeID,
		Year:              year,
		Month:             int(month),
		CalculationMethod: summary.MethodCalculated,
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		var ov *override.Override
		if o, ok := overrides[day]; ok {
			oo := o
			ov = &oo
		}

		c := attendance.Classify(attendance.ClassifierInput{
			Date:      date,
			Intervals: intervals[day],
			Punches:   punch.Summarize(times[day]),
			Override:  ov,
			Settings:  cfg,
		})

		if c.Scheduled {
			result.ScheduledDays++
		}
		switch c.Status {
		case attendance.StatusPresent:
			result.WorkedDays++
		case attendance.StatusAbsent:
			result.AbsenceDays++
		case attendance.StatusPending:
			result.PendingDays++
		}
		result.LateMinutes += c.LateMinutes
		result.EarlyMinutes += c.EarlyMinutes
	}

	overtime, err := s.LedgerRepository.SumOvertimeHours(ctx, employeeID, year, month)
	if err != nil {
		return summary.MonthlySummary{}, err
	}
	result.OvertimeHours = overtime

	adjustments, err := s.LedgerRepository.ListWageAdjustments(ctx, employeeID, year, month)
	if err != nil {
		return summary.MonthlySummary{}, err
	}
	result.WageChanges = ledger.SignedSum(adjustments)

	return result, nil
}

// GetMonthly implements summary.SummaryService.
func (s *SummaryServiceImpl) GetMonthly(ctx context.Context, employeeID string, year int, month time.Month) (summary.MonthlySummaryResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	// A validated month is served from its frozen snapshot, never
	// recomputed on read.
	stored, err := s.SummaryRepository.GetByEmployeeAndMonth(ctx, employeeID, year, month, false)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}
	if stored != nil && stored.IsValidated {
		return mapSummaryToResponse(*stored, &emp), nil
	}

	result, err := s.aggregate(ctx, employeeID, year, month)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}
	return mapSummaryToResponse(result, &emp), nil
}

// CheckValidation implements summary.SummaryService.
func (s *SummaryServiceImpl) CheckValidation(ctx context.Context, employeeID string, year int, month time.Month) (summary.ValidationCheck, error) {
	result, err := s.aggregate(ctx, employeeID, year, month)
	if err != nil {
		return summary.ValidationCheck{}, err
	}
	return summary.ValidationCheck{
		CanValidate:  result.PendingDays == 0,
		PendingCount: result.PendingDays,
	}, nil
}

// Validate implements summary.SummaryService.
func (s *SummaryServiceImpl) Validate(ctx context.Context, req summary.MonthRequest) (summary.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	validatedBy, err := validatorFromContext(ctx)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	month := time.Month(req.Month)
	var stored summary.MonthlySummary

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Lock the summary row; concurrent validations and cascade
		// invalidations of the same employee-month serialize here.
		if _, err := s.SummaryRepository.GetByEmployeeAndMonth(txCtx, req.EmployeeID, req.Year, month, true); err != nil {
			return err
		}

		result, err := s.aggregate(txCtx, req.EmployeeID, req.Year, month)
		if err != nil {
			return err
		}
		if result.PendingDays > 0 {
			stored = result
			return summary.ErrValidationBlocked
		}

		now := time.Now()
		result.IsValidated = true
		result.ValidatedBy = &validatedBy
		result.ValidatedAt = &now
		result.CalculationMethod = summary.MethodValidated

		stored, err = s.SummaryRepository.Upsert(txCtx, result)
		if err != nil {
			return err
		}

		_, err = s.ValidationRepository.Upsert(txCtx, summary.MonthlyValidation{
			EmployeeID:  req.EmployeeID,
			Year:        req.Year,
			Month:       req.Month,
			ValidatedBy: validatedBy,
			ValidatedAt: now,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, summary.ErrValidationBlocked) {
			return mapSummaryToResponse(stored, nil), err
		}
		return summary.MonthlySummaryResponse{}, err
	}

	slog.Info("month validated",
		"employee_id", req.EmployeeID,
		"year", req.Year,
		"month", req.Month,
		"validated_by", validatedBy,
	)

	return mapSummaryToResponse(stored, nil), nil
}

// Recalculate implements summary.SummaryService.
func (s *SummaryServiceImpl) Recalculate(ctx context.Context, req summary.MonthRequest) (summary.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	month := time.Month(req.Month)
	var stored summary.MonthlySummary

	err := s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.SummaryRepository.GetByEmployeeAndMonth(txCtx, req.EmployeeID, req.Year, month, true); err != nil {
			return err
		}

		// Exception-produced day edits are dropped so the month reflects
		// punch-derived truth again. Manually saved edits survive.
		removed, err := s.OverrideRepository.DeleteExceptionDayEditsInMonth(txCtx, req.EmployeeID, req.Year, month)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("exception day edits removed for recalculation",
				"employee_id", req.EmployeeID,
				"year", req.Year,
				"month", req.Month,
				"removed", removed,
			)
		}

		if err := s.ValidationRepository.Delete(txCtx, req.EmployeeID, req.Year, month); err != nil {
			return err
		}

		result, err := s.aggregate(txCtx, req.EmployeeID, req.Year, month)
		if err != nil {
			return err
		}

		stored, err = s.SummaryRepository.Upsert(txCtx, result)
		return err
	})
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	return mapSummaryToResponse(stored, nil), nil
}

// Invalidate implements summary.SummaryService.
func (s *SummaryServiceImpl) Invalidate(ctx context.Context, req summary.MonthRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	month := time.Month(req.Month)

	return s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		stored, err := s.SummaryRepository.GetByEmployeeAndMonth(txCtx, req.EmployeeID, req.Year, month, true)
		if err != nil {
			return err
		}
		if stored == nil || !stored.IsValidated {
			return summary.ErrMonthNotValidated
		}

		if err := s.SummaryRepository.MarkCalculated(txCtx, req.EmployeeID, req.Year, month); err != nil {
			return err
		}
		return s.ValidationRepository.Delete(txCtx, req.EmployeeID, req.Year, month)
	})
}

// BulkValidate implements summary.SummaryService. Each employee is validated
// in its own transaction; a blocked or failed month is reported in its item
// and the batch continues.
func (s *SummaryServiceImpl) BulkValidate(ctx context.Context, req summary.BulkValidateRequest) (summary.BulkValidateResult, error) {
	if err := req.Validate(); err != nil {
		return summary.BulkValidateResult{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx, employee.Filter{
		EmployeeIDs:  req.EmployeeIDs,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return summary.BulkValidateResult{}, err
	}

	result := summary.BulkValidateResult{Items: make([]summary.BulkItemResult, 0, len(employees))}

	for _, emp := range employees {
		item := summary.BulkItemResult{EmployeeID: emp.ID}

		resp, err := s.Validate(ctx, summary.MonthRequest{
			EmployeeID: emp.ID,
			Year:       req.Year,
			Month:      req.Month,
		})
		switch {
		case err == nil:
			item.Validated = true
			result.ValidatedCount++
		case errors.Is(err, summary.ErrValidationBlocked):
			item.PendingCount = resp.PendingDays
			item.Error = err.Error()
		default:
			item.Error = err.Error()
			slog.Error("bulk validation item failed",
				"employee_id", emp.ID,
				"year", req.Year,
				"month", req.Month,
				"error", err,
			)
		}

		result.Items = append(result.Items, item)
	}

	return result, nil
}

func validatorFromContext(ctx context.Context) (string, error) {
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

func mapSummaryToResponse(s summary.MonthlySummary, emp *employee.Employee) summary.MonthlySummaryResponse {
	resp := summary.MonthlySummaryResponse{
		EmployeeID:        s.EmployeeID,
		Year:              s.Year,
		Month:             s.Month,
		ScheduledDays:     s.ScheduledDays,
		WorkedDays:        s.WorkedDays,
		AbsenceDays:       s.AbsenceDays,
		PendingDays:       s.PendingDays,
		LateMinutes:       s.LateMinutes,
		EarlyMinutes:      s.EarlyMinutes,
		OvertimeHours:     s.OvertimeHours.StringFixed(2),
		WageChanges:       s.WageChanges.StringFixed(2),
		IsValidated:       s.IsValidated,
		ValidatedBy:       s.ValidatedBy,
		CalculationMethod: string(s.CalculationMethod),
	}
	if s.ValidatedAt != nil {
		formatted := s.ValidatedAt.Format(time.RFC3339)
		resp.ValidatedAt = &formatted
	}
	if emp != nil {
		name := emp.FirstName + " " + emp.LastName
		resp.EmployeeName = &name
	}
	return resp
}

func NewSummaryService(
	db *database.DB,
	resolver schedule.ResolverService,
	punchRepo punch.PunchRepository,
	overrideRepo override.OverrideRepository,
	settingsRepo settings.SettingsRepository,
	summaryRepo summary.SummaryRepository,
	validationRepo summary.ValidationRepository,
	ledgerRepo ledger.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
) summary.SummaryService {
	s := &SummaryServiceImpl{
		db:                   db,
		resolver:             resolver,
		PunchRepository:      punchRepo,
		OverrideRepository:   overrideRepo,
		SettingsRepository:   settingsRepo,
		SummaryRepository:    summaryRepo,
		ValidationRepository: validationRepo,
		LedgerRepository:     ledgerRepo,
		EmployeeRepository:   employeeRepo,
	}
	s.runTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}
