// Package refresh runs a job immediately and then on a fixed interval until
// its context is canceled.
package refresh

import (
	"context"
	"time"

	"github.com/sentinel-lite/sentinel/internal/logger"
)

// DefaultInterval is the dashboard counter refresh period.
const DefaultInterval = 30 * time.Second

// MinInterval is the shortest accepted period.
const MinInterval = time.Second

// Job is one refresh. It receives the scheduler's context.
type Job func(ctx context.Context) error

// Scheduler fires Job at startup and then every Interval. A failing run is
// reported to OnError and the schedule continues. Interval is used as given;
// New applies ClampInterval.
type Scheduler struct {
	Interval time.Duration
	Job      Job
	OnError  func(error)
	Logger   logger.Logger
}

// New creates a Scheduler. Intervals below MinInterval are raised to it.
func New(interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		Interval: ClampInterval(interval),
		Job:      job,
		Logger:   logger.Default(),
	}
}

// ClampInterval maps zero to DefaultInterval and raises anything shorter than
// MinInterval.
func ClampInterval(d time.Duration) time.Duration {
	if d == 0 {
		return DefaultInterval
	}
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// Run blocks until ctx is canceled and returns ctx.Err(). Runs never overlap.
// The ticker holds at most one pending tick, so a job that outlasts several
// intervals is followed by a single catch-up run rather than a burst.
func (s *Scheduler) Run(ctx context.Context) error {
	log := s.Logger
	if log == nil {
		log = logger.Noop()
	}

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runs := 0
	fire := func() {
		runs++
		if err := s.Job(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Debug("refresh run %d failed: %v", runs, err)
			if s.OnError != nil {
				s.OnError(err)
			}
		}
	}

	fire()
	for {
		select {
		case <-ctx.Done():
			log.Debug("refresh stopped after %d runs", runs)
			return ctx.Err()
		case <-ticker.C:
			fire()
		}
	}
}
