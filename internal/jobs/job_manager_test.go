package jobs_test

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"ordermanagement/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs    atomic.Int32
	ctxDone atomic.Bool
	block   chan struct{}
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(ctx context.Context) {
	j.runs.Add(1)
	if j.block != nil {
		select {
		case <-j.block:
		case <-ctx.Done():
			j.ctxDone.Store(true)
		}
	}
}

type panickingJob struct {
	runs atomic.Int32
}

func (j *panickingJob) Name() string { return "panicking" }

func (j *panickingJob) Run(context.Context) {
	j.runs.Add(1)
	panic("boom")
}

func TestNewJobManager_Validation(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, err := jobs.NewJobManager(0, logger, &countingJob{})
	require.Error(t, err)

	_, err = jobs.NewJobManager(time.Second, logger)
	require.Error(t, err)
}

func TestJobManager_RunsJobsPeriodically(t *testing.T) {
	job := &countingJob{}
	faulty := &panickingJob{}

	manager, err := jobs.NewJobManager(time.Second, slog.New(slog.DiscardHandler), job, faulty)
	require.NoError(t, err)
	require.NoError(t, manager.StartAll(context.Background()))

	require.Eventually(t, func() bool {
		return job.runs.Load() >= 2 && faulty.runs.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)

	manager.StopAll()
	stopped := job.runs.Load()

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, stopped, job.runs.Load())
}

func TestJobManager_StopCancelsRunningJob(t *testing.T) {
	job := &countingJob{block: make(chan struct{})}

	manager, err := jobs.NewJobManager(time.Second, slog.New(slog.DiscardHandler), job)
	require.NoError(t, err)
	require.NoError(t, manager.StartAll(context.Background()))

	require.Eventually(t, func() bool { return job.runs.Load() == 1 }, 5*time.Second, 20*time.Millisecond)

	manager.StopAll()
	assert.True(t, job.ctxDone.Load())
	assert.Equal(t, int32(1), job.runs.Load())
}

func TestJobManager_PanicDoesNotStopLaterRuns(t *testing.T) {
	faulty := &panickingJob{}

	manager, err := jobs.NewJobManager(time.Second, slog.New(slog.DiscardHandler), faulty)
	require.NoError(t, err)
	require.NoError(t, manager.StartAll(context.Background()))
	defer manager.StopAll()

	require.Eventually(t, func() bool { return faulty.runs.Load() >= 3 }, 6*time.Second, 50*time.Millisecond)
}
