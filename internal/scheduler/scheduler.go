// Package scheduler runs the marketplace's periodic jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	"bomul-market/internal/metrics"
	"bomul-market/utils"
)

// Job is one unit of periodic work
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type entry struct {
	job      Job
	interval time.Duration
}

// Scheduler runs each registered job on its own fixed cadence
type Scheduler struct {
	metrics *metrics.JobMetrics
	entries []entry
}

func New(m *metrics.JobMetrics) *Scheduler {
	return &Scheduler{metrics: m}
}

// Register adds job to run every interval. Non-positive intervals disable the job.
func (s *Scheduler) Register(job Job, interval time.Duration) {
	if interval <= 0 {
		utils.Info("scheduler: job disabled", map[string]any{"job": job.Name()})
		return
	}
	s.entries = append(s.entries, entry{job: job, interval: interval})
}

// Run executes every job once, then on its ticker, until ctx is canceled
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, e := range s.entries {
		wg.Add(1)
		go func(e entry) {
			defer wg.Done()
			s.loop(ctx, e)
		}(e)
	}
	wg.Wait()
	utils.Info("scheduler: stopped", nil)
}

func (s *Scheduler) loop(ctx context.Context, e entry) {
	s.RunOnce(ctx, e.job)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx, e.job)
		}
	}
}

// RunOnce executes job and records its outcome
func (s *Scheduler) RunOnce(ctx context.Context, job Job) error {
	start := time.Now()
	err := job.Run(ctx)
	duration := time.Since(start)
	s.metrics.ObserveDuration(job.Name(), duration)

	fields := map[string]any{"job": job.Name(), "duration_ms": duration.Milliseconds()}
	if err != nil {
		fields["error"] = err.Error()
		utils.Error("scheduler: job failed", fields)
		s.metrics.IncFailure(job.Name())
		return err
	}
	utils.Debug("scheduler: job completed", fields)
	s.metrics.IncSuccess(job.Name())
	return nil
}
