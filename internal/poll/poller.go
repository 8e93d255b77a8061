package poll

import (
	"context"
	"sync"
	"time"
)

// Poller re-runs a fetch on a fixed interval with single-flight semantics:
// each tick cancels the previous in-flight run before starting the next, so
// a slow response can never land after a newer one ("latest wins"). Stop (or
// cancelling the parent context) tears the timer down; no tick fires after.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context) error

	mu      sync.Mutex
	stop    context.CancelFunc
	inFly   context.CancelFunc
	running bool
	done    chan struct{}
}

func New(interval time.Duration, fn func(ctx context.Context) error) *Poller {
	return &Poller{interval: interval, fn: fn}
}

// Start launches the polling loop. Calling Start on a running poller is a
// no-op. An immediate first run fires before the first tick, matching the
// fetch-on-mount behavior of the pages that poll.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	p.stop = cancel
	p.running = true
	p.done = make(chan struct{})
	go p.loop(loopCtx)
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)
	p.run(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.abortInFlight()
			return
		case <-ticker.C:
			p.run(ctx)
		}
	}
}

func (p *Poller) run(ctx context.Context) {
	p.mu.Lock()
	if p.inFly != nil {
		p.inFly()
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.inFly = cancel
	p.mu.Unlock()

	// Errors are the fn's responsibility (it already logs and notifies);
	// polling keeps going regardless.
	go func() {
		defer cancel()
		_ = p.fn(runCtx)
	}()
}

func (p *Poller) abortInFlight() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inFly != nil {
		p.inFly()
		p.inFly = nil
	}
}

// Stop halts the loop and aborts any in-flight run. It blocks until the loop
// goroutine has exited, so no residual tick can fire afterwards.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	stop := p.stop
	done := p.done
	p.running = false
	p.mu.Unlock()

	stop()
	<-done
}
