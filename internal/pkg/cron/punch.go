package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
)

// PunchJobs holds the background work around raw punches.
type PunchJobs struct {
	punchService    punch.PunchService
	resolveInterval time.Duration
}

func NewPunchJobs(punchService punch.PunchService, resolveInterval time.Duration) *PunchJobs {
	return &PunchJobs{
		punchService:    punchService,
		resolveInterval: resolveInterval,
	}
}

func (j *PunchJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("resolve_unmatched_punches", j.resolveInterval, j.ResolveUnmatchedPunches)
}

// ResolveUnmatchedPunches retries identity resolution for punches that
// arrived before their employee record did.
func (j *PunchJobs) ResolveUnmatchedPunches(ctx context.Context) error {
	resolved, err := j.punchService.ResolveUnmatched(ctx)
	if err != nil {
		return err
	}

	if resolved > 0 {
		slog.Info("Cron: resolved unmatched punches", "count", resolved)
	}
	return nil
}
