package correction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/correction"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEmployeeRepo struct {
	employees []employee.Employee
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	return m.employees, nil
}

type mockSettingsRepo struct{}

func (m *mockSettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	return settings.Defaults(), nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, s settings.Settings) error {
	return nil
}

func actorContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("user_id", userID))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestBulkClearContinuesPastFailingEmployee(t *testing.T) {
	svc := &CorrectionServiceImpl{
		SettingsRepository: &mockSettingsRepo{},
		EmployeeRepository: &mockEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-1"}, {ID: "emp-2"}, {ID: "emp-3"},
		}},
	}
	svc.clearMonth = func(ctx context.Context, req correction.BulkClearRequest, employeeID string, year int, month time.Month, cfg settings.Settings, userID string) (int, error) {
		switch employeeID {
		case "emp-1":
			return 3, nil
		case "emp-2":
			return 0, errors.New("connection reset")
		default:
			return 2, nil
		}
	}

	result, err := svc.BulkClear(actorContext(t, "admin-1"), correction.BulkClearRequest{
		Kind:  correction.ClearLate,
		Year:  2026,
		Month: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, result.AffectedDays)
	require.Len(t, result.Items, 3)

	assert.Equal(t, "emp-1", result.Items[0].EmployeeID)
	assert.Equal(t, 3, result.Items[0].AffectedDays)
	assert.Empty(t, result.Items[0].Error)

	assert.Equal(t, "emp-2", result.Items[1].EmployeeID)
	assert.Zero(t, result.Items[1].AffectedDays)
	assert.Contains(t, result.Items[1].Error, "connection reset")

	assert.Equal(t, "emp-3", result.Items[2].EmployeeID)
	assert.Equal(t, 2, result.Items[2].AffectedDays)
}

func TestMatchesClearPredicate(t *testing.T) {
	late := attendance.DayClassification{Status: attendance.StatusPresent, LateMinutes: 10}
	early := attendance.DayClassification{Status: attendance.StatusPresent, EarlyMinutes: 25}
	pending := attendance.DayClassification{Status: attendance.StatusPending}
	clean := attendance.DayClassification{Status: attendance.StatusPresent}

	assert.True(t, matchesClearPredicate(correction.ClearLate, late))
	assert.False(t, matchesClearPredicate(correction.ClearLate, early))
	assert.False(t, matchesClearPredicate(correction.ClearLate, clean))

	assert.True(t, matchesClearPredicate(correction.ClearEarly, early))
	assert.False(t, matchesClearPredicate(correction.ClearEarly, late))

	assert.True(t, matchesClearPredicate(correction.ClearMissing, pending))
	assert.False(t, matchesClearPredicate(correction.ClearMissing, clean))
}

func TestAlreadyCleared(t *testing.T) {
	assert.False(t, alreadyCleared(nil, override.ClearLate))

	ov := &override.Override{
		Kind: override.KindStatusOverride,
		Details: override.Details{
			StatusOverride: &override.StatusOverrideDetails{Cleared: []override.ClearMarker{override.ClearLate}},
		},
	}
	assert.True(t, alreadyCleared(ov, override.ClearLate))
	assert.False(t, alreadyCleared(ov, override.ClearEarly))

	holiday := &override.Override{
		Kind:    override.KindHoliday,
		Details: override.Details{Holiday: &override.HolidayDetails{HolidayName: "May Day"}},
	}
	assert.False(t, alreadyCleared(holiday, override.ClearLate))
}

func TestClearingOverrideForMissingPunch(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	ov := clearingOverride(correction.ClearMissing, "emp-1", date, nil, "admin-1")

	assert.Equal(t, override.KindStatusOverride, ov.Kind)
	require.NotNil(t, ov.Details.StatusOverride)
	require.NotNil(t, ov.Details.StatusOverride.PendingTreatment)
	assert.Equal(t, override.TreatmentFullDay, *ov.Details.StatusOverride.PendingTreatment)
	assert.True(t, ov.Details.StatusOverride.HasCleared(override.ClearMissing))
}

func TestClearingOverrideKeepsStatusDecision(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	ov := clearingOverride(correction.ClearLate, "emp-1", date, nil, "admin-1")

	require.NotNil(t, ov.Details.StatusOverride)
	assert.Nil(t, ov.Details.StatusOverride.PendingTreatment)
	assert.True(t, ov.Details.StatusOverride.HasCleared(override.ClearLate))
}

func TestClearingOverrideMergesExistingMarkers(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	treatment := override.TreatmentHalfDay
	existing := &override.Override{
		Kind: override.KindStatusOverride,
		Details: override.Details{
			StatusOverride: &override.StatusOverrideDetails{
				PendingTreatment: &treatment,
				Reason:           "manual treatment",
				Cleared:          []override.ClearMarker{override.ClearEarly},
			},
		},
	}

	ov := clearingOverride(correction.ClearLate, "emp-1", date, existing, "admin-1")

	d := ov.Details.StatusOverride
	require.NotNil(t, d)
	assert.True(t, d.HasCleared(override.ClearEarly))
	assert.True(t, d.HasCleared(override.ClearLate))
	require.NotNil(t, d.PendingTreatment)
	assert.Equal(t, override.TreatmentHalfDay, *d.PendingTreatment)
	assert.Equal(t, "manual treatment", d.Reason)
}
