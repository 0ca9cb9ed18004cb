package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one periodic task.
type Job interface {
	Name() string
	Run(ctx context.Context)
}

// JobManager schedules all jobs on one cron instance with a shared interval.
type JobManager struct {
	cron     *cron.Cron
	interval time.Duration
	jobs     []Job
	logger   *slog.Logger

	cancel context.CancelFunc
}

// NewJobManager creates a manager; nothing runs until StartAll.
func NewJobManager(interval time.Duration, logger *slog.Logger, jobs ...Job) (*JobManager, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("job interval must be positive, got %s", interval)
	}
	if len(jobs) == 0 {
		return nil, errors.New("no jobs to schedule")
	}

	logger = logger.With("component", "job_manager")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))

	return &JobManager{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			// Recover must sit inside SkipIfStillRunning: the skip wrapper returns its
			// token only when Run returns normally.
			cron.WithChain(cron.SkipIfStillRunning(cronLogger), cron.Recover(cronLogger)),
		),
		interval: interval,
		jobs:     jobs,
		logger:   logger,
	}, nil
}

// StartAll registers every job and starts the scheduler. Runs receive a context
// derived from ctx that is cancelled by StopAll.
func (jm *JobManager) StartAll(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)

	schedule := fmt.Sprintf("@every %s", jm.interval)
	for _, job := range jm.jobs {
		if _, err := jm.cron.AddFunc(schedule, func() { job.Run(runCtx) }); err != nil {
			cancel()
			return fmt.Errorf("failed to schedule %s job: %w", job.Name(), err)
		}
	}

	jm.cancel = cancel
	jm.cron.Start()
	jm.logger.InfoContext(ctx, "Jobs started", "interval", jm.interval, "jobs", len(jm.jobs))
	return nil
}

// StopAll halts future runs and waits for the ones in flight.
func (jm *JobManager) StopAll() {
	if jm.cancel != nil {
		jm.cancel()
	}
	<-jm.cron.Stop().Done()
	jm.logger.Info("Jobs stopped")
}
