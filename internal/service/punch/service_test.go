package punch

import (
	"context"
	"testing"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPunchRepo struct {
	punches map[string]punch.RawPunch
	deleted []string
}

func (m *mockPunchRepo) Create(ctx context.Context, p punch.RawPunch) (punch.RawPunch, error) {
	return p, nil
}

func (m *mockPunchRepo) GetByID(ctx context.Context, id string) (punch.RawPunch, error) {
	p, ok := m.punches[id]
	if !ok {
		return punch.RawPunch{}, punch.ErrPunchNotFound
	}
	return p, nil
}

func (m *mockPunchRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

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
	return 0, nil
}

func TestBuildNameIndex(t *testing.T) {
	index := buildNameIndex([]employee.Employee{
		{ID: "emp-1", FirstName: "Jane", LastName: "Doe"},
		{ID: "emp-2", FirstName: "Omar", LastName: "El Amrani"},
	})

	lookup := func(name string) (string, bool) {
		id, ok := index[punch.CanonicalName(name)]
		return id, ok
	}

	id, ok := lookup("Jane Doe")
	assert.True(t, ok)
	assert.Equal(t, "emp-1", id)

	id, ok = lookup("DOE jane")
	assert.True(t, ok)
	assert.Equal(t, "emp-1", id)

	id, ok = lookup("el amrani omar")
	assert.True(t, ok)
	assert.Equal(t, "emp-2", id)

	_, ok = lookup("Jane Smith")
	assert.False(t, ok)
}

func TestBuildNameIndexEmpty(t *testing.T) {
	index := buildNameIndex(nil)
	assert.Empty(t, index)
}

func TestDeleteRefusesSyntheticPunch(t *testing.T) {
	repo := &mockPunchRepo{punches: map[string]punch.RawPunch{
		"p-synthetic": {
			ID:        "p-synthetic",
			Source:    punch.SourceCorrection,
			Synthetic: true,
			PunchTime: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		},
		"p-correction": {
			ID:        "p-correction",
			Source:    punch.SourceCorrection,
			PunchTime: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		},
	}}
	svc := &PunchServiceImpl{PunchRepository: repo}

	err := svc.Delete(context.Background(), "p-synthetic")
	require.ErrorIs(t, err, punch.ErrDeleteNotPermitted)

	err = svc.Delete(context.Background(), "p-correction")
	require.ErrorIs(t, err, punch.ErrDeleteNotPermitted)

	assert.Empty(t, repo.deleted)
}

func TestDeleteUnknownPunch(t *testing.T) {
	repo := &mockPunchRepo{}
	svc := &PunchServiceImpl{PunchRepository: repo}

	err := svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, punch.ErrPunchNotFound)
}
