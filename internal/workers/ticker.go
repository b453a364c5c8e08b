// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "time"

type timeTicker struct {
	*time.Ticker
}

// NewTimeTicker is the default TickerFactory backed by [time.NewTicker].
func NewTimeTicker(interval time.Duration) Ticker {
	return timeTicker{time.NewTicker(interval)}
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}
