package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/shared/logger"
)

type countingJob struct {
	calls atomic.Int32
	err   error
}

func (j *countingJob) Execute(ctx context.Context) (int, error) {
	j.calls.Add(1)
	return 2, j.err
}

func TestSchedulerManager_RunsJobImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, m.RegisterSessionCleanupJob(job, time.Hour))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "session-cleanup", m.Jobs()[0].Name())

	m.Start()

	assert.Eventually(t, func() bool { return job.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	// Stopping twice is a no-op.
	assert.NoError(t, m.Stop())
}

func TestSchedulerManager_DefaultInterval(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, m.RegisterSessionCleanupJob(&countingJob{}, 0))
	assert.Len(t, m.Jobs(), 1)
}

func TestSchedulerManager_JobErrorIsLogged(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	job := &countingJob{err: errors.New("db down")}
	m.runBatch(context.Background(), "session-cleanup", job)
	assert.Equal(t, int32(1), job.calls.Load())
}
