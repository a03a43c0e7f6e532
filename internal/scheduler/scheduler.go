package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
)

// gapHorizon bounds how far ahead MaxGap samples a cron expression.
const gapHorizon = 8 * 24 * time.Hour

// Scheduler runs a job on a cron schedule. Runs never overlap: a tick that
// fires while the previous one is still running is skipped.
type Scheduler struct {
	expr     string
	schedule cron.Schedule
	loc      *time.Location
}

// New parses expr, a standard five-field cron expression or a descriptor
// such as "@every 5m", evaluated in loc.
func New(expr string, loc *time.Location) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", expr, err)
	}
	if s, ok := schedule.(*cron.SpecSchedule); ok && s.Location == time.Local {
		s.Location = loc
	}
	return &Scheduler{expr: expr, schedule: schedule, loc: loc}, nil
}

// MaxGap returns the longest interval between two consecutive runs.
func (s *Scheduler) MaxGap() time.Duration {
	if d, ok := s.schedule.(cron.ConstantDelaySchedule); ok {
		return d.Delay
	}

	start := s.schedule.Next(time.Date(2025, time.January, 6, 0, 0, 0, 0, s.loc))
	if start.IsZero() {
		return 0
	}

	var longest time.Duration
	prev := start
	for i := 0; i < 5000 && prev.Sub(start) < gapHorizon; i++ {
		next := s.schedule.Next(prev)
		if next.IsZero() {
			break
		}
		if gap := next.Sub(prev); gap > longest {
			longest = gap
		}
		prev = next
	}
	return longest
}

// CheckCoverage warns when runs are so far apart that a reminder trigger
// could fall between two windows of ±window and never be sent.
func (s *Scheduler) CheckCoverage(window time.Duration) bool {
	gap := s.MaxGap()
	if gap > 2*window {
		log.Warn("schedule gap exceeds reminder window, some reminders may be skipped",
			"schedule", s.expr,
			"max_gap", gap,
			"window", window,
		)
		return false
	}
	return true
}

// Run calls job once immediately, then on every scheduled tick until ctx is
// cancelled. It waits for a running job to finish before returning.
func (s *Scheduler) Run(ctx context.Context, job func(ctx context.Context)) error {
	logger := log.Cron()

	job(ctx)
	if ctx.Err() != nil {
		return nil
	}

	c := cron.New(
		cron.WithLocation(s.loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() { job(ctx) }))
	c.Start()
	log.Info("scheduler started", "schedule", s.expr, "next", c.Entries()[0].Next.Format(time.RFC3339))

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info("scheduler stopped")
	return nil
}
