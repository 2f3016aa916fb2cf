package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"braindrop/internal/logger"
)

// stubChecker is a trivial SyncService for job tests; mocking the whole
// interface buys nothing here.
type stubChecker struct {
	stale bool
	err   error

	checks atomic.Int64
}

func (s *stubChecker) Download(context.Context, func(int)) error { return nil }

func (s *stubChecker) NeedsRedownload(context.Context) (bool, error) {
	s.checks.Add(1)
	return s.stale, s.err
}

func TestSyncJob_NotifiesWhenStale(t *testing.T) {
	checker := &stubChecker{stale: true}
	job := NewSyncJob(checker, logger.Nop())

	notified := make(chan struct{}, 1)
	job.Start(context.Background(), 10*time.Millisecond, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	defer job.Stop()

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("expected a notification within a second")
	}
}

func TestSyncJob_SilentWhenFresh(t *testing.T) {
	checker := &stubChecker{stale: false}
	job := NewSyncJob(checker, logger.Nop())

	var notifications atomic.Int64
	job.Start(context.Background(), 10*time.Millisecond, func() {
		notifications.Add(1)
	})

	time.Sleep(100 * time.Millisecond)
	job.Stop()

	assert.Greater(t, checker.checks.Load(), int64(0), "the job must keep checking")
	assert.Zero(t, notifications.Load())
}

func TestSyncJob_KeepsGoingAfterCheckError(t *testing.T) {
	checker := &stubChecker{err: errors.New("server unavailable")}
	job := NewSyncJob(checker, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond, func() {
		t.Error("must not notify on a failed check")
	})

	time.Sleep(100 * time.Millisecond)
	job.Stop()

	assert.Greater(t, checker.checks.Load(), int64(2), "errors must not kill the loop")
}

func TestSyncJob_StopWithoutStart(t *testing.T) {
	job := NewSyncJob(&stubChecker{}, logger.Nop())
	job.Stop()
	job.Stop()
}

func TestSyncJob_RestartReplacesLoop(t *testing.T) {
	checker := &stubChecker{stale: true}
	job := NewSyncJob(checker, logger.Nop())

	job.Start(context.Background(), time.Hour, func() {})
	// Restart with a short interval; the hour-long loop must be gone.
	notified := make(chan struct{}, 1)
	job.Start(context.Background(), 10*time.Millisecond, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	defer job.Stop()

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("restarted job never ticked")
	}
}
