package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnceFiresEveryJob(t *testing.T) {
	t.Parallel()

	var first, second atomic.Int32

	s := NewScheduler()
	s.AddJob("first_job", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second_job", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestStartRunsJobImmediatelyAndStopWaits(t *testing.T) {
	t.Parallel()

	ran := make(chan struct{}, 1)

	s := NewScheduler()
	s.AddJob("immediate_job", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run on start")
	}

	s.Stop()
}
