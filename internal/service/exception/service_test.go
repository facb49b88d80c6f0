package exception

import (
	"context"
	"testing"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/exception"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/summary"
	summaryService "github.com/clockwork-hr/attendance-backend-go/internal/service/summary"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type mockExceptionRepo struct {
	stored  map[string]exception.Exception
	deleted []string
}

func (m *mockExceptionRepo) Create(ctx context.Context, e exception.Exception) (exception.Exception, error) {
	return e, nil
}

func (m *mockExceptionRepo) GetByID(ctx context.Context, id string, forUpdate bool) (exception.Exception, error) {
	e, ok := m.stored[id]
	if !ok {
		return exception.Exception{}, exception.ErrExceptionNotFound
	}
	return e, nil
}

func (m *mockExceptionRepo) UpdateStatus(ctx context.Context, id string, status exception.Status, reviewerID string) error {
	return nil
}

func (m *mockExceptionRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockOverrideRepo struct {
	byException map[string][]override.Override
}

func (m *mockOverrideRepo) Upsert(ctx context.Context, o override.Override) (override.Override, error) {
	return o, nil
}

func (m *mockOverrideRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*override.Override, error) {
	return nil, nil
}

func (m *mockOverrideRepo) GetForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int]override.Override, error) {
	return nil, nil
}

func (m *mockOverrideRepo) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	return nil
}

func (m *mockOverrideRepo) DeleteByExceptionID(ctx context.Context, exceptionID string) ([]override.Override, error) {
	removed := m.byException[exceptionID]
	delete(m.byException, exceptionID)
	return removed, nil
}

func (m *mockOverrideRepo) DeleteExceptionDayEditsInMonth(ctx context.Context, employeeID string, year int, month time.Month) (int64, error) {
	return 0, nil
}

type syntheticRangeDelete struct {
	employeeID string
	from, to   time.Time
}

type mockPunchRepo struct {
	rangeDeletes []syntheticRangeDelete
}

func (m *mockPunchRepo) Create(ctx context.Context, p punch.RawPunch) (punch.RawPunch, error) {
	return p, nil
}

func (m *mockPunchRepo) GetByID(ctx context.Context, id string) (punch.RawPunch, error) {
	return punch.RawPunch{}, punch.ErrPunchNotFound
}

func (m *mockPunchRepo) Delete(ctx context.Context, id string) error { return nil }

func (m *mockPunchRepo) TimesForDay(ctx context.Context, employeeID string, date time.Time) ([]time.Time, error) {
	return nil, nil
}

func (m *mockPunchRepo) TimesForMonth(ctx context.Context, employeeID string, year int, month time.Month) (map[int][]time.Time, error) {
	return nil, nil
}

func (m *mockPunchRepo) ListUnresolved(ctx context.Context, limit int) ([]punch.RawPunch, error) {
	return nil, nil
}

func (m *mockPunchRepo) AssignEmployee(ctx context.Context, punchID, employeeID string) error {
	return nil
}

func (m *mockPunchRepo) HasSyntheticForDay(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return false, nil
}

func (m *mockPunchRepo) DeleteSyntheticInRange(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	m.rangeDeletes = append(m.rangeDeletes, syntheticRangeDelete{employeeID: employeeID, from: from, to: to})
	return 2, nil
}

type stubSummaryRepo struct{}

func (stubSummaryRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month, forUpdate bool) (*summary.MonthlySummary, error) {
	return nil, nil
}

func (stubSummaryRepo) Upsert(ctx context.Context, s summary.MonthlySummary) (summary.MonthlySummary, error) {
	return s, nil
}

func (stubSummaryRepo) MarkCalculated(ctx context.Context, employeeID string, year int, month time.Month) error {
	return nil
}

type stubValidationRepo struct{}

func (stubValidationRepo) Upsert(ctx context.Context, v summary.MonthlyValidation) (summary.MonthlyValidation, error) {
	return v, nil
}

func (stubValidationRepo) Delete(ctx context.Context, employeeID string, year int, month time.Month) error {
	return nil
}

func (stubValidationRepo) Get(ctx context.Context, employeeID string, year int, month time.Month) (*summary.MonthlyValidation, error) {
	return nil, nil
}

func newDeleteTestService(excRepo *mockExceptionRepo, ovRepo *mockOverrideRepo, punchRepo *mockPunchRepo) *ExceptionServiceImpl {
	s := &ExceptionServiceImpl{
		ExceptionRepository: excRepo,
		OverrideRepository:  ovRepo,
		PunchRepository:     punchRepo,
		cascade:             summaryService.NewCascade(stubSummaryRepo{}, stubValidationRepo{}),
	}
	s.runTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}
	return s
}

func TestDeleteRemovesMaterializedSyntheticPunches(t *testing.T) {
	start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	excRepo := &mockExceptionRepo{stored: map[string]exception.Exception{
		"exc-1": {
			ID:         "exc-1",
			EmployeeID: "emp-1",
			Type:       exception.TypeMissingPunchFix,
			StartDate:  start,
			EndDate:    end,
			Status:     exception.StatusApproved,
		},
	}}
	ovRepo := &mockOverrideRepo{byException: map[string][]override.Override{
		"exc-1": {
			{EmployeeID: "emp-1", Date: start, Kind: override.KindPunchAdd},
			{EmployeeID: "emp-1", Date: end, Kind: override.KindPunchAdd},
		},
	}}
	punchRepo := &mockPunchRepo{}
	svc := newDeleteTestService(excRepo, ovRepo, punchRepo)

	require.NoError(t, svc.Delete(context.Background(), "exc-1"))

	require.Len(t, punchRepo.rangeDeletes, 1)
	assert.Equal(t, "emp-1", punchRepo.rangeDeletes[0].employeeID)
	assert.Equal(t, start, punchRepo.rangeDeletes[0].from)
	assert.Equal(t, end, punchRepo.rangeDeletes[0].to)
	assert.Equal(t, []string{"exc-1"}, excRepo.deleted)
	assert.Empty(t, ovRepo.byException)
}

func TestDeleteLeavesRealPunchesAlone(t *testing.T) {
	start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	excRepo := &mockExceptionRepo{stored: map[string]exception.Exception{
		"exc-2": {
			ID:         "exc-2",
			EmployeeID: "emp-1",
			Type:       exception.TypeLeaveRequest,
			StartDate:  start,
			EndDate:    start,
			Status:     exception.StatusApproved,
		},
	}}
	ovRepo := &mockOverrideRepo{byException: map[string][]override.Override{
		"exc-2": {{EmployeeID: "emp-1", Date: start, Kind: override.KindLeave}},
	}}
	punchRepo := &mockPunchRepo{}
	svc := newDeleteTestService(excRepo, ovRepo, punchRepo)

	require.NoError(t, svc.Delete(context.Background(), "exc-2"))
	assert.Empty(t, punchRepo.rangeDeletes)
}

func TestDetailsForDayMissingPunchFix(t *testing.T) {
	exc := exception.Exception{
		Type: exception.TypeMissingPunchFix,
		Payload: exception.Payload{
			PunchType: strPtr("exit"),
			PunchTime: strPtr("17:30"),
		},
	}

	d, err := detailsForDay(exc)
	require.NoError(t, err)
	require.NotNil(t, d.PunchAdd)
	assert.Equal(t, "exit", d.PunchAdd.PunchType)
	assert.Equal(t, 17, d.PunchAdd.Time.Hour())
	assert.Equal(t, 30, d.PunchAdd.Time.Minute())
}

func TestDetailsForDayLeaveAndHoliday(t *testing.T) {
	leave := exception.Exception{
		Type:    exception.TypeLeaveRequest,
		Payload: exception.Payload{LeaveType: strPtr("annual")},
	}
	d, err := detailsForDay(leave)
	require.NoError(t, err)
	require.NotNil(t, d.Leave)
	assert.Equal(t, "annual", d.Leave.LeaveType)

	holiday := exception.Exception{
		Type:    exception.TypeHolidayAssignment,
		Payload: exception.Payload{HolidayName: strPtr("Eid")},
	}
	d, err = detailsForDay(holiday)
	require.NoError(t, err)
	require.NotNil(t, d.Holiday)
	assert.Equal(t, "Eid", d.Holiday.HolidayName)
}

func TestDetailsForDayDayEdit(t *testing.T) {
	exc := exception.Exception{
		Type: exception.TypeDayEdit,
		Payload: exception.Payload{
			EntryTime:     strPtr("09:00"),
			Justification: strPtr("badge reader down"),
		},
	}

	d, err := detailsForDay(exc)
	require.NoError(t, err)
	require.NotNil(t, d.DayEdit)
	assert.Equal(t, "09:00", *d.DayEdit.EntryTime)
	assert.Nil(t, d.DayEdit.ExitTime)
	assert.Equal(t, "badge reader down", d.DayEdit.Justification)
}

func TestDetailsForDayIncompletePayload(t *testing.T) {
	for _, exc := range []exception.Exception{
		{Type: exception.TypeMissingPunchFix},
		{Type: exception.TypeMissingPunchFix, Payload: exception.Payload{PunchType: strPtr("entry"), PunchTime: strPtr("not-a-time")}},
		{Type: exception.TypeLeaveRequest},
		{Type: exception.TypeHolidayAssignment},
		{Type: exception.TypeDayEdit},
		{Type: exception.Type("unknown")},
	} {
		_, err := detailsForDay(exc)
		assert.ErrorIs(t, err, exception.ErrInvalidPayload, "type %s", exc.Type)
	}
}

func TestOverrideKindMapping(t *testing.T) {
	assert.Equal(t, override.KindPunchAdd, exception.TypeMissingPunchFix.OverrideKind())
	assert.Equal(t, override.KindLeave, exception.TypeLeaveRequest.OverrideKind())
	assert.Equal(t, override.KindHoliday, exception.TypeHolidayAssignment.OverrideKind())
	assert.Equal(t, override.KindDayEdit, exception.TypeDayEdit.OverrideKind())
}

func TestCreateExceptionRequestValidation(t *testing.T) {
	valid := exception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       exception.TypeLeaveRequest,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Payload:    exception.Payload{LeaveType: strPtr("annual")},
	}
	require.NoError(t, valid.Validate())

	reversed := valid
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.Error(t, reversed.Validate())

	missingPayload := valid
	missingPayload.Payload = exception.Payload{}
	assert.Error(t, missingPayload.Validate())
}
