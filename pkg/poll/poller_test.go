package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

func newTestPoller(t *testing.T) *poller {
	t.Helper()
	log, err := logger.NewLoggerFromEnv("test")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return NewPoller(log).(*poller)
}

func TestRegisterJobRejectsNonPositiveInterval(t *testing.T) {
	p := newTestPoller(t)

	job := func(ctx context.Context) error { return nil }

	p.RegisterJob("zero", job, JobConfig{IntervalSeconds: 0})
	p.RegisterJob("negative", job, JobConfig{IntervalSeconds: -5})

	if len(p.jobs) != 0 {
		t.Fatalf("expected no jobs registered, got %d", len(p.jobs))
	}

	// A zero-interval ticker would panic in the run loop; starting and
	// stopping must be safe regardless.
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := p.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterJobRejectsEmptyNameAndNilJob(t *testing.T) {
	p := newTestPoller(t)

	p.RegisterJob("", func(ctx context.Context) error { return nil }, JobConfig{IntervalSeconds: 1})
	p.RegisterJob("nil-job", nil, JobConfig{IntervalSeconds: 1})

	if len(p.jobs) != 0 {
		t.Fatalf("expected no jobs registered, got %d", len(p.jobs))
	}
}

func TestPollerRunsRegisteredJob(t *testing.T) {
	p := newTestPoller(t)

	var runs atomic.Int64
	p.RegisterJob("counter", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}, JobConfig{IntervalSeconds: 1})

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	if runs.Load() == 0 {
		t.Fatal("expected the job to run at least once")
	}
}
