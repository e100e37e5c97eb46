package reaper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingService struct {
	calls atomic.Int64
	err   error
}

func (s *countingService) DeleteNotPaidOrders(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestWorker_SweepsOnEveryTick(t *testing.T) {
	svc := &countingService{}
	w := &Worker{
		service:  svc,
		interval: 5 * time.Millisecond,
		stopCh:   make(chan struct{}),
	}

	done := make(chan struct{})
	go func() {
		w.Start(context.Background())
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return svc.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	w.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorker_KeepsTickingAfterAFailedSweep(t *testing.T) {
	svc := &countingService{err: errors.New("db down")}
	w := &Worker{
		service:  svc,
		interval: 5 * time.Millisecond,
		stopCh:   make(chan struct{}),
	}

	go w.Start(context.Background())
	defer w.Stop()

	assert.Eventually(t, func() bool {
		return svc.calls.Load() >= 2
	}, time.Second, time.Millisecond)
}

func TestWorker_StopsOnContextCancel(t *testing.T) {
	svc := &countingService{}
	w := &Worker{
		service:  svc,
		interval: time.Hour,
		stopCh:   make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not honor context cancellation")
	}
}
