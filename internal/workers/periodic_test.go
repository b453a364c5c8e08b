// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTicker delivers ticks only when the test sends them.
type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

// fakeTickers records every ticker created by a Periodic worker.
type fakeTickers struct {
	mu        sync.Mutex
	created   []*fakeTicker
	intervals []time.Duration
}

func (f *fakeTickers) factory(interval time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	f.created = append(f.created, t)
	f.intervals = append(f.intervals, interval)
	return t
}

func (f *fakeTickers) last(t *testing.T) *fakeTicker {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.created)
	return f.created[len(f.created)-1]
}

func waitCall(t *testing.T, calls <-chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("task was not called")
	}
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestPeriodic_RunsTaskOnEveryTick(t *testing.T) {
	tickers := &fakeTickers{}
	calls := make(chan struct{}, 10)
	p := NewPeriodic(6*time.Second, func(context.Context) { calls <- struct{}{} }, WithTickerFactory(tickers.factory))

	p.Start(context.Background())
	defer p.Stop()

	ticker := tickers.last(t)
	for i := 0; i < 3; i++ {
		ticker.ch <- time.Now()
		waitCall(t, calls)
	}

	assert.Equal(t, []time.Duration{6 * time.Second}, tickers.intervals)
}

func TestPeriodic_NoCallBeforeFirstTick(t *testing.T) {
	tickers := &fakeTickers{}
	var calls atomic.Int64
	p := NewPeriodic(time.Second, func(context.Context) { calls.Add(1) }, WithTickerFactory(tickers.factory))

	p.Start(context.Background())
	p.Stop()

	assert.Equal(t, int64(0), calls.Load())
}

func TestPeriodic_StopStopsTickerAndGoroutine(t *testing.T) {
	tickers := &fakeTickers{}
	p := NewPeriodic(time.Second, func(context.Context) {}, WithTickerFactory(tickers.factory))

	p.Start(context.Background())
	require.True(t, p.Running())
	p.Stop()

	assert.False(t, p.Running())
	assert.True(t, tickers.last(t).stopped.Load())
}

func TestPeriodic_ContextCancelStopsGoroutine(t *testing.T) {
	tickers := &fakeTickers{}
	p := NewPeriodic(time.Second, func(context.Context) {}, WithTickerFactory(tickers.factory))
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)
	cancel()
	p.Stop()

	assert.True(t, tickers.last(t).stopped.Load())
}

func TestPeriodic_TaskSeesCancellation(t *testing.T) {
	tickers := &fakeTickers{}
	started := make(chan struct{})
	finished := make(chan error, 1)
	p := NewPeriodic(time.Second, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		finished <- ctx.Err()
	}, WithTickerFactory(tickers.factory))

	p.Start(context.Background())
	tickers.last(t).ch <- time.Now()
	<-started
	p.Stop()

	assert.ErrorIs(t, <-finished, context.Canceled)
}

func TestPeriodic_RestartReplacesRun(t *testing.T) {
	tickers := &fakeTickers{}
	p := NewPeriodic(time.Second, func(context.Context) {}, WithTickerFactory(tickers.factory))

	p.Start(context.Background())
	first := tickers.last(t)
	p.Start(context.Background())
	defer p.Stop()

	assert.True(t, first.stopped.Load(), "first run must be stopped by the second Start")
	assert.Len(t, tickers.created, 2)
}

func TestPeriodic_StopBeforeStart_NoPanic(t *testing.T) {
	p := NewPeriodic(time.Second, func(context.Context) {})

	assert.NotPanics(t, func() { p.Stop() })
}

func TestPeriodic_DoubleStop_NoPanic(t *testing.T) {
	p := NewPeriodic(time.Hour, func(context.Context) {})

	p.Start(context.Background())
	p.Stop()

	assert.NotPanics(t, func() { p.Stop() })
}

func TestPeriodic_RealTicker(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic(5*time.Millisecond, func(context.Context) { calls.Add(1) })

	p.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	p.Stop()

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no calls after Stop")
}
