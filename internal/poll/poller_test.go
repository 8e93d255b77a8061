package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoller_RunsImmediatelyThenOnTicks(t *testing.T) {
	var runs int64
	p := New(20*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})

	p.Start(context.Background())
	defer p.Stop()

	time.Sleep(10 * time.Millisecond)
	if atomic.LoadInt64(&runs) < 1 {
		t.Fatalf("expected an immediate first run")
	}

	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt64(&runs) < 3 {
		t.Fatalf("expected repeated runs, got %d", atomic.LoadInt64(&runs))
	}
}

func TestPoller_StopPreventsResidualRuns(t *testing.T) {
	var runs int64
	p := New(10*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})

	p.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	p.Stop()

	settled := atomic.LoadInt64(&runs)
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != settled {
		t.Fatalf("poller fired after Stop: %d -> %d", settled, got)
	}
}

func TestPoller_StartTwiceIsNoop(t *testing.T) {
	var runs int64
	p := New(time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})

	p.Start(context.Background())
	p.Start(context.Background())
	defer p.Stop()

	time.Sleep(20 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != 1 {
		t.Fatalf("expected a single immediate run, got %d", got)
	}
}

func TestPoller_NewTickCancelsInFlightRun(t *testing.T) {
	cancelled := make(chan struct{}, 8)
	var calls int64
	p := New(15*time.Millisecond, func(ctx context.Context) error {
		n := atomic.AddInt64(&calls, 1)
		if n == 1 {
			// Simulate a slow response; the next tick should cancel it.
			<-ctx.Done()
			cancelled <- struct{}{}
		}
		return nil
	})

	p.Start(context.Background())
	defer p.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatalf("slow in-flight run was never cancelled by the next tick")
	}
}

func TestPoller_StopAbortsInFlightRun(t *testing.T) {
	cancelled := make(chan struct{}, 1)
	started := make(chan struct{}, 1)
	p := New(time.Hour, func(ctx context.Context) error {
		started <- struct{}{}
		<-ctx.Done()
		cancelled <- struct{}{}
		return nil
	})

	p.Start(context.Background())
	<-started
	p.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatalf("Stop did not cancel the in-flight run")
	}
}
