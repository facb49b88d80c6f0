package summary

import (
	"context"
	"testing"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/ledger"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/summary"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	months map[int][]schedule.Interval
}

func (r *stubResolver) IntervalsOn(ctx context.Context, employeeID string, date time.Time) ([]schedule.Interval, error) {
	return r.months[date.Day()], nil
}

func (r *stubResolver) MonthIntervals(ctx context.Context, employeeID string, year int, month time.Month) (map[int][]schedule.Interval, error) {
	return r.months, nil
}

func (r *stubResolver) Timetable(ctx context.Context, id string) (schedule.TimetableResponse, error) {
	return schedule.TimetableResponse{}, nil
}

type stubPunchRepo struct {
	times map[int][]time.Time
}

func (r *stubPunchRepo) Create(ctx context.Context, p punch.RawPunch) (punch.RawPunch, error) {
	return p, nil
}

func (r *stubPunchRepo) GetByID(ctx context.Context, id string) (punch.RawPunch, error) {
	return punch.RawPunch{}, punch.ErrPunchNotFound
}

func (r *stubPunchRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *stubPunchRepo) TimesForDay(ctx context.Context, employeeID string, date time.Time) ([]time.Time, error) {
	return r.times[date.Day()], nil
}

func (r *stubPunchRepo) TimesForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int][]time.Time, error) {
	return r.times, nil
}

func (r *stubPunchRepo) ListUnresolved(ctx context.Context, limit int) ([]punch.RawPunch, error) {
	return nil, nil
}

func (r *stubPunchRepo) AssignEmployee(ctx context.Context, punchID, employeeID string) error {
	return nil
}

func (r *stubPunchRepo) HasSyntheticForDay(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return false, nil
}

func (r *stubPunchRepo) DeleteSyntheticInRange(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	return 0, nil
}

type stubOverrideRepo struct {
	overrides map[int]override.Override
}

func (r *stubOverrideRepo) Upsert(ctx context.Context, o override.Override) (override.Override, error) {
	return o, nil
}

func (r *stubOverrideRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*override.Override, error) {
	return nil, nil
}

func (r *stubOverrideRepo) GetForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int]override.Override, error) {
	return r.overrides, nil
}

func (r *stubOverrideRepo) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	return nil
}

func (r *stubOverrideRepo) DeleteByExceptionID(ctx context.Context, exceptionID string) ([]override.Override, error) {
	return nil, nil
}

func (r *stubOverrideRepo) DeleteExceptionDayEditsInMonth(ctx context.Context, employeeID string, year int, month time.Month) (int64, error) {
	return 0, nil
}

type stubSettingsRepo struct{}

func (r *stubSettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	return settings.Defaults(), nil
}

func (r *stubSettingsRepo) Update(ctx context.Context, s settings.Settings) error { return nil }

type mockSummaryRepo struct {
	stored          *summary.MonthlySummary
	upsertCount     int
	markCalculated  int
	lockedReadCount int
}

func (r *mockSummaryRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month, forUpdate bool) (*summary.MonthlySummary, error) {
	if forUpdate {
		r.lockedReadCount++
	}
	if r.stored == nil {
		return nil, nil
	}
	s := *r.stored
	return &s, nil
}

func (r *mockSummaryRepo) Upsert(ctx context.Context, s summary.MonthlySummary) (summary.MonthlySummary, error) {
	r.upsertCount++
	r.stored = &s
	return s, nil
}

func (r *mockSummaryRepo) MarkCalculated(ctx context.Context, employeeID string, year int, month time.Month) error {
	r.markCalculated++
	if r.stored != nil {
		r.stored.IsValidated = false
		r.stored.ValidatedBy = nil
		r.stored.ValidatedAt = nil
		r.stored.CalculationMethod = summary.MethodCalculated
	}
	return nil
}

type mockValidationRepo struct {
	marker      *summary.MonthlyValidation
	deleteCount int
}

func (r *mockValidationRepo) Upsert(ctx context.Context, v summary.MonthlyValidation) (summary.MonthlyValidation, error) {
	r.marker = &v
	return v, nil
}

func (r *mockValidationRepo) Delete(ctx context.Context, employeeID string, year int, month time.Month) error {
	r.deleteCount++
	r.marker = nil
	return nil
}

func (r *mockValidationRepo) Get(ctx context.Context, employeeID string, year int, month time.Month) (*summary.MonthlyValidation, error) {
	return r.marker, nil
}

type stubLedgerRepo struct{}

func (r *stubLedgerRepo) SumOvertimeHours(ctx context.Context, employeeID string, year int, month time.Month) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *stubLedgerRepo) ListWageAdjustments(ctx context.Context, employeeID string, year int, month time.Month) ([]ledger.WageAdjustment, error) {
	return nil, nil
}

func (r *stubLedgerRepo) CreateOvertime(ctx context.Context, e ledger.OvertimeEntry) (ledger.OvertimeEntry, error) {
	return e, nil
}

type stubEmployeeRepo struct{}

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FirstName: "Dana", LastName: "Reyes"}, nil
}

func (r *stubEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	return []employee.Employee{{ID: "emp-1"}}, nil
}

func validatorContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("user_id", userID))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func newTestService(resolver *stubResolver, punches *stubPunchRepo, summaryRepo *mockSummaryRepo, validationRepo *mockValidationRepo) *SummaryServiceImpl {
	s := &SummaryServiceImpl{
		resolver:             resolver,
		PunchRepository:      punches,
		OverrideRepository:   &stubOverrideRepo{},
		SettingsRepository:   &stubSettingsRepo{},
		SummaryRepository:    summaryRepo,
		ValidationRepository: validationRepo,
		LedgerRepository:     &stubLedgerRepo{},
		EmployeeRepository:   &stubEmployeeRepo{},
	}
	s.runTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}
	return s
}

func workInterval() schedule.Interval {
	return schedule.Interval{
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
	}
}

func TestValidateRefusesWhilePendingDaysRemain(t *testing.T) {
	resolver := &stubResolver{months: map[int][]schedule.Interval{
		2: {workInterval()},
		3: {workInterval()},
	}}
	punches := &stubPunchRepo{times: map[int][]time.Time{
		2: {
			time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
		},
		// Day 3 has a single punch and no treatment, so it stays pending.
		3: {time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)},
	}}
	summaryRepo := &mockSummaryRepo{}
	validationRepo := &mockValidationRepo{}
	svc := newTestService(resolver, punches, summaryRepo, validationRepo)

	resp, err := svc.Validate(validatorContext(t, "manager-1"), summary.MonthRequest{
		EmployeeID: "emp-1",
		Year:       2026,
		Month:      3,
	})

	require.ErrorIs(t, err, summary.ErrValidationBlocked)
	assert.Equal(t, 1, resp.PendingDays)
	assert.False(t, resp.IsValidated)

	// Refusal writes nothing: no frozen snapshot, no validation marker.
	assert.Zero(t, summaryRepo.upsertCount)
	assert.Nil(t, summaryRepo.stored)
	assert.Nil(t, validationRepo.marker)
}

func TestValidateFreezesCleanMonth(t *testing.T) {
	resolver := &stubResolver{months: map[int][]schedule.Interval{
		2: {workInterval()},
		3: {workInterval()},
	}}
	punches := &stubPunchRepo{times: map[int][]time.Time{
		2: {
			time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
		},
	}}
	summaryRepo := &mockSummaryRepo{}
	validationRepo := &mockValidationRepo{}
	svc := newTestService(resolver, punches, summaryRepo, validationRepo)

	resp, err := svc.Validate(validatorContext(t, "manager-1"), summary.MonthRequest{
		EmployeeID: "emp-1",
		Year:       2026,
		Month:      3,
	})

	require.NoError(t, err)
	assert.True(t, resp.IsValidated)
	assert.Equal(t, string(summary.MethodValidated), resp.CalculationMethod)
	assert.Equal(t, 2, resp.ScheduledDays)
	assert.Equal(t, 1, resp.WorkedDays)
	assert.Equal(t, 1, resp.AbsenceDays)
	assert.Zero(t, resp.PendingDays)

	require.NotNil(t, summaryRepo.stored)
	assert.True(t, summaryRepo.stored.IsValidated)
	require.NotNil(t, summaryRepo.stored.ValidatedBy)
	assert.Equal(t, "manager-1", *summaryRepo.stored.ValidatedBy)

	require.NotNil(t, validationRepo.marker)
	assert.Equal(t, "manager-1", validationRepo.marker.ValidatedBy)
	assert.Equal(t, 1, summaryRepo.lockedReadCount)
}

func TestCascadeInvalidateMonthFlipsValidatedMonth(t *testing.T) {
	validatedBy := "manager-1"
	now := time.Now()
	summaryRepo := &mockSummaryRepo{stored: &summary.MonthlySummary{
		EmployeeID:        "emp-1",
		Year:              2026,
		Month:             3,
		IsValidated:       true,
		ValidatedBy:       &validatedBy,
		ValidatedAt:       &now,
		CalculationMethod: summary.MethodValidated,
	}}
	validationRepo := &mockValidationRepo{marker: &summary.MonthlyValidation{
		EmployeeID:  "emp-1",
		Year:        2026,
		Month:       3,
		ValidatedBy: validatedBy,
		ValidatedAt: now,
	}}
	cascade := NewCascade(summaryRepo, validationRepo)

	err := cascade.InvalidateMonth(context.Background(), "emp-1", 2026, time.March)

	require.NoError(t, err)
	assert.Equal(t, 1, summaryRepo.markCalculated)
	assert.False(t, summaryRepo.stored.IsValidated)
	assert.Equal(t, summary.MethodCalculated, summaryRepo.stored.CalculationMethod)
	assert.Nil(t, validationRepo.marker)
}

func TestCascadeInvalidateMonthNoOpWithoutValidation(t *testing.T) {
	// No summary row at all.
	summaryRepo := &mockSummaryRepo{}
	validationRepo := &mockValidationRepo{}
	cascade := NewCascade(summaryRepo, validationRepo)

	require.NoError(t, cascade.InvalidateMonth(context.Background(), "emp-1", 2026, time.March))
	assert.Zero(t, summaryRepo.markCalculated)
	assert.Zero(t, validationRepo.deleteCount)

	// A calculated, never-validated row is left alone too.
	summaryRepo.stored = &summary.MonthlySummary{
		EmployeeID:        "emp-1",
		Year:              2026,
		Month:             3,
		CalculationMethod: summary.MethodCalculated,
	}
	require.NoError(t, cascade.InvalidateMonth(context.Background(), "emp-1", 2026, time.March))
	assert.Zero(t, summaryRepo.markCalculated)
	assert.Zero(t, validationRepo.deleteCount)
}
