package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
)

type ResolverServiceImpl struct {
	schedule.TimetableRepository
}

// IntervalsFor filters assigned intervals down to the ones scheduled on a
// date: the assignment window must contain the date and the interval's
// weekday must match the date's canonical day-of-week. Result is ordered by
// start time.
func IntervalsFor(assigned []schedule.AssignedInterval, date time.Time) []schedule.Interval {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	weekday := schedule.CanonicalWeekday(date)

	var intervals []schedule.Interval
	for _, ai := range assigned {
		if ai.Weekday != weekday {
			continue
		}
		if day.Before(truncateDay(ai.EffectiveFrom)) || day.After(truncateDay(ai.EffectiveTo)) {
			continue
		}
		intervals = append(intervals, ai.Interval)
	}

	sort.Slice(intervals, func(i, j int) bool {
		return clockMinutes(intervals[i].StartTime) < clockMinutes(intervals[j].StartTime)
	})

	return intervals
}

// IntervalsOn implements schedule.ResolverService.
func (s *ResolverServiceImpl) IntervalsOn(ctx context.Context, employeeID string, date time.Time) ([]schedule.Interval, error) {
	assigned, err := s.TimetableRepository.GetAssignedIntervals(ctx, employeeID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	return IntervalsFor(assigned, date), nil
}

// MonthIntervals implements schedule.ResolverService.
func (s *ResolverServiceImpl) MonthIntervals(ctx context.Context, employeeID string, year int, month time.Month) (map[int][]schedule.Interval, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	assigned, err := s.TimetableRepository.GetAssignedIntervals(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month schedule: %w", err)
	}

	byDay := make(map[int][]schedule.Interval)
	for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		if intervals := IntervalsFor(assigned, day); len(intervals) > 0 {
			byDay[day.Day()] = intervals
		}
	}

	return byDay, nil
}

// Timetable implements schedule.ResolverService.
func (s *ResolverServiceImpl) Timetable(ctx context.Context, id string) (schedule.TimetableResponse, error) {
	t, intervals, err := s.TimetableRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.TimetableResponse{}, err
	}

	return schedule.TimetableResponse{
		ID:        t.ID,
		Name:      t.Name,
		Intervals: schedule.MapIntervalsToResponse(intervals),
	}, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func NewResolverService(timetableRepo schedule.TimetableRepository) schedule.ResolverService {
	return &ResolverServiceImpl{TimetableRepository: timetableRepo}
}
