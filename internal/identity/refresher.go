// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"math"
	"time"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/workers"
)

const (
	DefaultRefreshInterval = 6 * time.Second
	DefaultMinValidity     = 70 * time.Second
)

// RefreshFunc performs one refresh attempt and reports whether the token
// was replaced.
type RefreshFunc func(ctx context.Context, minValidity time.Duration) (bool, error)

// TokenRefresher asks the Client to refresh its token on every tick.
// Failures are logged and never stop the task.
type TokenRefresher struct {
	client      Client
	refresh     RefreshFunc
	minValidity time.Duration
	now         func() time.Time

	interval  time.Duration
	newTicker workers.TickerFactory
	job       *workers.Periodic

	logger *logger.Logger
}

type RefresherOption func(*TokenRefresher)

func WithRefreshFunc(refresh RefreshFunc) RefresherOption {
	return func(r *TokenRefresher) { r.refresh = refresh }
}

func WithClock(now func() time.Time) RefresherOption {
	return func(r *TokenRefresher) { r.now = now }
}

func WithTickerFactory(factory workers.TickerFactory) RefresherOption {
	return func(r *TokenRefresher) { r.newTicker = factory }
}

// NewTokenRefresher returns an idle refresher for client. Non-positive
// interval and minValidity fall back to DefaultRefreshInterval and
// DefaultMinValidity.
func NewTokenRefresher(client Client, interval, minValidity time.Duration, logger *logger.Logger, opts ...RefresherOption) *TokenRefresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if minValidity <= 0 {
		minValidity = DefaultMinValidity
	}

	r := &TokenRefresher{
		client:      client,
		refresh:     client.UpdateToken,
		minValidity: minValidity,
		now:         time.Now,
		interval:    interval,
		newTicker:   workers.NewTimeTicker,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.job = workers.NewPeriodic(r.interval, r.tick, workers.WithTickerFactory(r.newTicker))
	return r
}

// Start launches the periodic task, replacing a previous run.
func (r *TokenRefresher) Start(ctx context.Context) {
	r.logger.Debug().Dur("interval", r.interval).Dur("min_validity", r.minValidity).Msg("starting token refresher")
	r.job.Start(ctx)
}

// Stop cancels the task and waits for it to exit.
func (r *TokenRefresher) Stop() {
	r.job.Stop()
}

func (r *TokenRefresher) tick(ctx context.Context) {
	refreshed, err := r.refresh(ctx, r.minValidity)
	if err != nil {
		r.logger.Err(err).Msg("failed to refresh token")
		return
	}

	if refreshed {
		r.logger.Info().Msg("token refreshed")
		return
	}

	seconds := int64(math.Round(r.client.ExpiresIn(r.now()).Seconds()))
	r.logger.Warn().Msgf("token not refreshed, valid for %d seconds", seconds)
}
