// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// Periodic runs a task on every tick of a fixed interval. It is idle until
// Start is called. Only one run is active at a time.
type Periodic struct {
	interval  time.Duration
	task      func(ctx context.Context)
	newTicker TickerFactory

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// PeriodicOption customises a Periodic worker.
type PeriodicOption func(*Periodic)

// WithTickerFactory replaces the time-based ticker.
func WithTickerFactory(factory TickerFactory) PeriodicOption {
	return func(p *Periodic) {
		if factory != nil {
			p.newTicker = factory
		}
	}
}

// NewPeriodic creates a worker calling task every interval. The first call
// happens after one interval, not at Start.
func NewPeriodic(interval time.Duration, task func(ctx context.Context), opts ...PeriodicOption) *Periodic {
	p := &Periodic{
		interval:  interval,
		task:      task,
		newTicker: NewTimeTicker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start stops any previously running job, then launches a background
// goroutine that calls the task on every tick. The goroutine exits when ctx
// is cancelled or Stop is called. A task call in progress is not
// interrupted; it sees its context cancelled.
func (p *Periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	ticker := p.newTicker(p.interval)
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C():
				if jobCtx.Err() != nil {
					return
				}
				p.task(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running.
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Running reports whether Start was called without a matching Stop.
func (p *Periodic) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
