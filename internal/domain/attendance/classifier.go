package attendance

import (
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/settings"
)

// ClassifierInput is everything one employee-day classification depends on.
// Classification is a pure function of this value; identical inputs always
// yield identical output.
type ClassifierInput struct {
	Date      time.Time
	Intervals []schedule.Interval
	Punches   punch.DaySummary
	Override  *override.Override
	Settings  settings.Settings
}

// Classify turns a day's schedule, punches and override into a status plus
// timing deltas. The decision table is evaluated top-down, first match wins:
//
//  1. status_override with full_day/half_day treatment  -> present
//  2. status_override with refuse treatment             -> absent
//  3. one punch, no override or untreated status ov.    -> pending
//  4. any other override                                -> present
//  5. two or more punches                               -> present
//  6. otherwise absent when scheduled, day_off when not
//
// An override suppresses late/early penalties entirely, not just status.
// half_day counts as a full present day; the engine does not halve duration.
func Classify(in ClassifierInput) DayClassification {
	out := DayClassification{
		Scheduled:  len(in.Intervals) > 0,
		Overridden: in.Override != nil,
	}

	ov := in.Override
	count := in.Punches.Count

	switch {
	case ov != nil && ov.Kind == override.KindStatusOverride && hasTreatment(ov, override.TreatmentFullDay, override.TreatmentHalfDay):
		out.Status = StatusPresent

	case ov != nil && ov.Kind == override.KindStatusOverride && hasTreatment(ov, override.TreatmentRefuse):
		out.Status = StatusAbsent

	case count == 1 && (ov == nil || untreatedStatusOverride(ov)):
		out.Status = StatusPending

	case ov != nil:
		// Any remaining override kind is assumed to cover the day.
		out.Status = StatusPresent

	case count >= 2:
		out.Status = StatusPresent

	case out.Scheduled:
		out.Status = StatusAbsent

	default:
		out.Status = StatusDayOff
	}

	if ov == nil && count >= 1 {
		out.LateMinutes, out.EarlyMinutes = timingDeltas(in)
	}

	return out
}

func hasTreatment(ov *override.Override, treatments ...override.PendingTreatment) bool {
	d := ov.Details.StatusOverride
	if d == nil || d.PendingTreatment == nil {
		return false
	}
	for _, t := range treatments {
		if *d.PendingTreatment == t {
			return true
		}
	}
	return false
}

func untreatedStatusOverride(ov *override.Override) bool {
	if ov.Kind != override.KindStatusOverride {
		return false
	}
	d := ov.Details.StatusOverride
	return d == nil || d.PendingTreatment == nil
}

// timingDeltas computes grace-adjusted lateness against the first interval's
// start and early departure against the last interval's end.
func timingDeltas(in ClassifierInput) (late int, early int) {
	if len(in.Intervals) == 0 {
		return 0, 0
	}

	first := in.Intervals[0]
	last := in.Intervals[len(in.Intervals)-1]

	if in.Punches.Entry != nil {
		start := onDate(in.Date, first.StartTime)
		diff := int(in.Punches.Entry.Sub(start).Minutes()) - in.Settings.LatenessGraceMinutes
		if diff > 0 {
			late = diff
		}
	}

	if in.Punches.Exit != nil {
		end := onDate(in.Date, last.EndTime)
		diff := int(end.Sub(*in.Punches.Exit).Minutes()) - in.Settings.EarlyGraceMinutes
		if diff > 0 {
			early = diff
		}
	}

	return late, early
}

// onDate projects a time-of-day value onto the classification date.
func onDate(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}
