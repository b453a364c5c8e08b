// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface, a Periodic worker that runs a task on a
// fixed interval, and a Workers aggregate that starts and stops several
// workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns immediately; the worker runs until
// ctx is cancelled or Stop is called. Stop blocks until the worker has
// exited and is safe to call more than once.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Ticker is the part of [time.Ticker] a Periodic worker needs. Tests
// substitute a ticker whose channel they drive by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates the Ticker used by one run of a Periodic worker.
type TickerFactory func(interval time.Duration) Ticker
