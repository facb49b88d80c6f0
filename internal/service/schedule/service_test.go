package schedule

import (
	"testing"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func window(from, to string) (time.Time, time.Time) {
	f, _ := time.Parse("2006-01-02", from)
	t, _ := time.Parse("2006-01-02", to)
	return f, t
}

func TestIntervalsForFiltersWeekdayAndWindow(t *testing.T) {
	from, to := window("2026-03-01", "2026-03-31")
	assigned := []schedule.AssignedInterval{
		{Interval: schedule.Interval{Weekday: 3, StartTime: clock(9, 0), EndTime: clock(17, 0)}, EffectiveFrom: from, EffectiveTo: to},
		{Interval: schedule.Interval{Weekday: 4, StartTime: clock(10, 0), EndTime: clock(18, 0)}, EffectiveFrom: from, EffectiveTo: to},
	}

	// 2026-03-04 is a Wednesday.
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	intervals := IntervalsFor(assigned, wednesday)

	require.Len(t, intervals, 1)
	assert.Equal(t, 3, intervals[0].Weekday)

	thursday := wednesday.AddDate(0, 0, 1)
	intervals = IntervalsFor(assigned, thursday)

	require.Len(t, intervals, 1)
	assert.Equal(t, 4, intervals[0].Weekday)
}

func TestIntervalsForRespectsAssignmentWindow(t *testing.T) {
	from, to := window("2026-03-10", "2026-03-20")
	assigned := []schedule.AssignedInterval{
		{Interval: schedule.Interval{Weekday: 3, StartTime: clock(9, 0), EndTime: clock(17, 0)}, EffectiveFrom: from, EffectiveTo: to},
	}

	before := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)  // Wednesday before the window
	inside := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC) // Wednesday inside
	after := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)  // Wednesday after

	assert.Empty(t, IntervalsFor(assigned, before))
	assert.Len(t, IntervalsFor(assigned, inside), 1)
	assert.Empty(t, IntervalsFor(assigned, after))
}

func TestIntervalsForWindowBoundsInclusive(t *testing.T) {
	// Window is exactly one Wednesday on both ends.
	from, to := window("2026-03-04", "2026-03-04")
	assigned := []schedule.AssignedInterval{
		{Interval: schedule.Interval{Weekday: 3, StartTime: clock(9, 0), EndTime: clock(17, 0)}, EffectiveFrom: from, EffectiveTo: to},
	}

	assert.Len(t, IntervalsFor(assigned, from), 1)
}

func TestIntervalsForOrderedByStartTime(t *testing.T) {
	from, to := window("2026-03-01", "2026-03-31")
	assigned := []schedule.AssignedInterval{
		{Interval: schedule.Interval{Weekday: 3, StartTime: clock(13, 0), EndTime: clock(18, 0)}, EffectiveFrom: from, EffectiveTo: to},
		{Interval: schedule.Interval{Weekday: 3, StartTime: clock(8, 0), EndTime: clock(12, 0)}, EffectiveFrom: from, EffectiveTo: to},
	}

	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	intervals := IntervalsFor(assigned, wednesday)

	require.Len(t, intervals, 2)
	assert.Equal(t, clock(8, 0), intervals[0].StartTime)
	assert.Equal(t, clock(13, 0), intervals[1].StartTime)
}
