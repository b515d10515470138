// Package poll drives the password-reset status polling. The backend approves
// reset requests out of band, so the client checks on an interval until the
// request resolves or a maximum wait elapses.
package poll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	DefaultInterval = 5 * time.Second
	DefaultMaxWait  = 2 * time.Minute
)

// ErrTimedOut means the maximum wait elapsed without the check resolving.
var ErrTimedOut = errors.New("timed out waiting for approval")

// CheckFunc is one poll round. Only done stops the poll: a failed round is
// treated as "not resolved yet" and the loop keeps ticking, so a flaky
// network cannot cut the wait short.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Poller runs at most one poll loop at a time. Starting a new loop cancels
// the previous one.
type Poller struct {
	interval time.Duration
	maxWait  time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	gen     int
}

func New(interval, maxWait time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	return &Poller{interval: interval, maxWait: maxWait}
}

// Run polls fn until it reports done, the max wait elapses, or ctx is
// cancelled. fn runs once immediately before the first interval. Round errors
// do not stop the loop; if the wait elapses without fn ever resolving, the
// last round error is attached to ErrTimedOut. Blocking; use Start for the
// fire-and-forget form.
func (p *Poller) Run(ctx context.Context, fn CheckFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	gen := p.setCancel(cancel)
	defer p.clearCancel(cancel, gen)

	deadline := time.NewTimer(p.maxWait)
	defer deadline.Stop()
	tick := time.NewTicker(p.interval)
	defer tick.Stop()

	var lastErr error
	for {
		done, err := fn(ctx)
		lastErr = err
		if err == nil && done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			if lastErr != nil {
				return fmt.Errorf("%w: %w", ErrTimedOut, lastErr)
			}
			return ErrTimedOut
		case <-tick.C:
		}
	}
}

// Start runs the poll loop in its own goroutine and delivers the result to
// onDone. Any loop already running is cancelled first.
func (p *Poller) Start(ctx context.Context, fn CheckFunc, onDone func(error)) {
	p.Cancel()
	go func() {
		err := p.Run(ctx, fn)
		if onDone != nil {
			onDone(err)
		}
	}()
}

// Cancel stops the running loop, if any. The loop returns context.Canceled.
func (p *Poller) Cancel() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Running reports whether a poll loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Poller) setCancel(cancel context.CancelFunc) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
	p.cancel = cancel
	p.running = true
	p.gen++
	return p.gen
}

// clearCancel only tears down its own generation: a newer Run may have
// already taken over the poller.
func (p *Poller) clearCancel(cancel context.CancelFunc, gen int) {
	cancel()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen == gen {
		p.running = false
		p.cancel = nil
	}
}
