package correction

import (
	"context"
	"log/slog"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/correction"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/attendance-backend-go/internal/repository/postgresql"
	summaryService "github.com/clockwork-hr/attendance-backend-go/internal/service/summary"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type CorrectionServiceImpl struct {
	db       *database.DB
	resolver schedule.ResolverService
	punch.PunchRepository
	override.OverrideRepository
	settings.SettingsRepository
	employee.EmployeeRepository
	cascade *summaryService.Cascade

	clearMonth func(ctx context.Context, req correction.BulkClearRequest, employeeID string, year int, month time.Month, cfg settings.Settings, userID string) (int, error)
}

// BulkClear implements correction.CorrectionService. Each employee is
// processed in its own transaction; a failing employee is reported in its
// result item and the batch continues. Days already stamped with the
// operation's marker are skipped, so a rerun with the same arguments writes
// nothing and reports zero affected days.
func (s *CorrectionServiceImpl) BulkClear(ctx context.Context, req correction.BulkClearRequest) (correction.BulkClearResult, error) {
	if err := req.Validate(); err != nil {
		return correction.BulkClearResult{}, err
	}

	userID, err := actorFromContext(ctx)
	if err != nil {
		return correction.BulkClearResult{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx, employee.Filter{
		EmployeeIDs:  req.EmployeeIDs,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return correction.BulkClearResult{}, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return correction.BulkClearResult{}, err
	}

	month := time.Month(req.Month)
	result := correction.BulkClearResult{}

	for _, emp := range employees {
		item := correction.BulkClearItem{EmployeeID: emp.ID}

		affected, err := s.clearMonth(ctx, req, emp.ID, req.Year, month, cfg, userID)
		if err != nil {
			item.Error = err.Error()
			slog.Error("bulk clear employee failed",
				"kind", string(req.Kind),
				"employee_id", emp.ID,
				"error", err,
			)
		} else {
			item.AffectedDays = affected
			result.AffectedDays += affected
		}

		result.Items = append(result.Items, item)
	}

	slog.Info("bulk clear finished",
		"kind", string(req.Kind),
		"year", req.Year,
		"month", req.Month,
		"employees", len(employees),
		"affected_days", result.AffectedDays,
	)

	return result, nil
}

func (s *CorrectionServiceImpl) clearEmployeeMonth(ctx context.Context, req correction.BulkClearRequest, employeeID string, year int, month time.Month, cfg settings.Settings, userID string) (int, error) {
	affected := 0

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		intervals, err := s.resolver.MonthIntervals(txCtx, employeeID, year, month)
		if err != nil {
			return err
		}
		times, err := s.PunchRepository.TimesForMonth(txCtx, employeeID, year, month)
		if err != nil {
			return err
		}
		overrides, err := s.OverrideRepository.GetForMonth(txCtx, employeeID, year, month)
		if err != nil {
			return err
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

			if !matchesClearPredicate(req.Kind, c) {
				continue
			}
			if alreadyCleared(ov, req.Kind.Marker()) {
				continue
			}

			if _, err := s.OverrideRepository.Upsert(txCtx, clearingOverride(req.Kind, employeeID, date, ov, userID)); err != nil {
				return err
			}
			affected++
		}

		// The validated month flips back only when something was written.
		if affected > 0 {
			return s.cascade.InvalidateMonth(txCtx, employeeID, year, month)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// matchesClearPredicate selects the days a clearing kind targets. Days whose
// timing was already suppressed by an override carry zero deltas and are
// naturally skipped.
func matchesClearPredicate(kind correction.ClearKind, c attendance.DayClassification) bool {
	switch kind {
	case correction.ClearLate:
		return c.LateMinutes > 0
	case correction.ClearEarly:
		return c.EarlyMinutes > 0
	case correction.ClearMissing:
		return c.Status == attendance.StatusPending
	}
	return false
}

func alreadyCleared(ov *override.Override, marker override.ClearMarker) bool {
	if ov == nil || ov.Details.StatusOverride == nil {
		return false
	}
	return ov.Details.StatusOverride.HasCleared(marker)
}

// clearingOverride builds the status override a clear writes, merging with
// whatever status override already sits on the day so earlier markers and
// treatments survive.
func clearingOverride(kind correction.ClearKind, employeeID string, date time.Time, existing *override.Override, userID string) override.Override {
	details := override.StatusOverrideDetails{}
	if existing != nil && existing.Details.StatusOverride != nil {
		details = *existing.Details.StatusOverride
	}
	details.Cleared = append(details.Cleared, kind.Marker())
	if details.Reason == "" {
		details.Reason = "bulk " + string(kind)
	}

	// Clearing a missing punch counts the day as fully worked; clearing
	// lateness or early departure leaves the status decision alone.
	if kind == correction.ClearMissing && details.PendingTreatment == nil {
		treatment := override.TreatmentFullDay
		details.PendingTreatment = &treatment
	}

	return override.Override{
		EmployeeID: employeeID,
		Date:       date,
		Kind:       override.KindStatusOverride,
		Details:    override.Details{StatusOverride: &details},
		CreatedBy:  userID,
	}
}

func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", jwtauth.ErrUnauthorized
	}
	return userID, nil
}

func NewCorrectionService(
	db *database.DB,
	resolver schedule.ResolverService,
	punchRepo punch.PunchRepository,
	overrideRepo override.OverrideRepository,
	settingsRepo settings.SettingsRepository,
	employeeRepo employee.EmployeeRepository,
	cascade *summaryService.Cascade,
) correction.CorrectionService {
	s := &CorrectionServiceImpl{
		db:                 db,
		resolver:           resolver,
		PunchRepository:    punchRepo,
		OverrideRepository: overrideRepo,
		SettingsRepository: settingsRepo,
		EmployeeRepository: employeeRepo,
		cascade:            cascade,
	}
	s.clearMonth = s.clearEmployeeMonth
	return s
}
