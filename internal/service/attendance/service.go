package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/attendance"
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

type AttendanceServiceImpl struct {
	db       *database.DB
	resolver schedule.ResolverService
	punch.PunchRepository
	override.OverrideRepository
	attendance.DayRecordRepository
	settings.SettingsRepository
	cascade *summaryService.Cascade
}

// userIDFromContext pulls the acting user out of the JWT claims.
func userIDFromContext(ctx context.Context) (string, error) {
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

// ClassifyDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClassifyDay(ctx context.Context, employeeID string, date time.Time) (attendance.DayClassificationResponse, error) {
	cfg, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	intervals, err := a.resolver.IntervalsOn(ctx, employeeID, date)
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	times, err := a.PunchRepository.TimesForDay(ctx, employeeID, date)
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}
	daySummary := punch.Summarize(times)

	ov, err := a.OverrideRepository.GetByEmployeeAndDate(ctx, employeeID, date, false)
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	result := attendance.Classify(attendance.ClassifierInput{
		Date:      date,
		Intervals: intervals,
		Punches:   daySummary,
		Override:  ov,
		Settings:  cfg,
	})

	return mapClassificationToResponse(employeeID, date, result, daySummary, ov != nil), nil
}

// SaveDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SaveDay(ctx context.Context, req attendance.SaveDayRequest) (attendance.DayClassificationResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.DayClassificationResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Lock the day's override so the compatibility check and the
		// rewrite are one unit against concurrent editors.
		existing, err := a.OverrideRepository.GetByEmployeeAndDate(txCtx, req.EmployeeID, date, true)
		if err != nil {
			return err
		}
		if existing != nil && conflictsWithDayEdit(existing.Kind) {
			return override.ErrConflictingOverride
		}

		rec := attendance.DayRecord{
			EmployeeID: req.EmployeeID,
			Date:       date,
			EntryTime:  clockOnDate(date, req.EntryTime),
			ExitTime:   clockOnDate(date, req.ExitTime),
			Status:     attendance.StatusPresent,
			SavedBy:    userID,
		}
		if _, err := a.DayRecordRepository.Save(txCtx, rec); err != nil {
			return err
		}

		ov := override.Override{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Kind:       override.KindDayEdit,
			Details: override.Details{
				DayEdit: &override.DayEditDetails{
					EntryTime:     req.EntryTime,
					ExitTime:      req.ExitTime,
					Justification: req.Justification,
				},
			},
			CreatedBy: userID,
		}
		if _, err := a.OverrideRepository.Upsert(txCtx, ov); err != nil {
			return err
		}

		return a.cascade.InvalidateIfValidated(txCtx, req.EmployeeID, date)
	})
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	return a.ClassifyDay(ctx, req.EmployeeID, date)
}

// RevertDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RevertDay(ctx context.Context, req attendance.RevertDayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}

	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := a.OverrideRepository.GetByEmployeeAndDate(txCtx, req.EmployeeID, date, true)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := a.OverrideRepository.DeleteByEmployeeAndDate(txCtx, req.EmployeeID, date); err != nil {
				return err
			}
		}

		if err := a.DayRecordRepository.DeleteByEmployeeAndDate(txCtx, req.EmployeeID, date); err != nil {
			return err
		}

		return a.cascade.InvalidateIfValidated(txCtx, req.EmployeeID, date)
	})
}

// TreatPending implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TreatPending(ctx context.Context, req attendance.TreatPendingRequest) (attendance.DayClassificationResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.DayClassificationResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	treatment := override.PendingTreatment(req.Action)

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Lock so a concurrent bulk clear on the same day cannot interleave.
		existing, err := a.OverrideRepository.GetByEmployeeAndDate(txCtx, req.EmployeeID, date, true)
		if err != nil {
			return err
		}

		details := override.StatusOverrideDetails{
			PendingTreatment: &treatment,
			Reason:           req.Reason,
		}
		// Keep markers a previous clearing wrote on this day.
		if existing != nil && existing.Details.StatusOverride != nil {
			details.Cleared = existing.Details.StatusOverride.Cleared
		}

		ov := override.Override{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Kind:       override.KindStatusOverride,
			Details:    override.Details{StatusOverride: &details},
			CreatedBy:  userID,
		}
		if _, err := a.OverrideRepository.Upsert(txCtx, ov); err != nil {
			return err
		}

		return a.cascade.InvalidateIfValidated(txCtx, req.EmployeeID, date)
	})
	if err != nil {
		return attendance.DayClassificationResponse{}, err
	}

	return a.ClassifyDay(ctx, req.EmployeeID, date)
}

// conflictsWithDayEdit reports the override kinds a manual day edit must
// not silently replace.
func conflictsWithDayEdit(kind override.Kind) bool {
	switch kind {
	case override.KindLeave, override.KindHoliday, override.KindPunchAdd:
		return true
	}
	return false
}

// clockOnDate turns an "HH:MM" string into a timestamp on the given date.
func clockOnDate(date time.Time, clock *string) *time.Time {
	if clock == nil {
		return nil
	}
	parsed, err := time.Parse("15:04", *clock)
	if err != nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
	return &t
}

func mapClassificationToResponse(employeeID string, date time.Time, result attendance.DayClassification, punches punch.DaySummary, hasOverride bool) attendance.DayClassificationResponse {
	resp := attendance.DayClassificationResponse{
		EmployeeID:   employeeID,
		Date:         date.Format("2006-01-02"),
		Status:       result.Status,
		LateMinutes:  result.LateMinutes,
		EarlyMinutes: result.EarlyMinutes,
		PunchCount:   punches.Count,
		HasOverride:  hasOverride,
	}
	if punches.Entry != nil {
		s := punches.Entry.Format("15:04")
		resp.EntryTime = &s
	}
	if punches.Exit != nil {
		s := punches.Exit.Format("15:04")
		resp.ExitTime = &s
	}
	return resp
}

func NewAttendanceService(
	db *database.DB,
	resolver schedule.ResolverService,
	punchRepo punch.PunchRepository,
	overrideRepo override.OverrideRepository,
	dayRecordRepo attendance.DayRecordRepository,
	settingsRepo settings.SettingsRepository,
	cascade *summaryService.Cascade,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                  db,
		resolver:            resolver,
		PunchRepository:     punchRepo,
		OverrideRepository:  overrideRepo,
		DayRecordRepository: dayRecordRepo,
		SettingsRepository:  settingsRepo,
		cascade:             cascade,
	}
}
