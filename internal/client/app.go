// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/service"
	"github.com/MKhiriev/portobello/internal/workers"
)

var ErrNoServices = errors.New("client services are not configured")

// App fetches the configuration and prints it to out. With a positive
// watch interval it keeps re-fetching until the context is cancelled.
type App struct {
	configuration service.ClientConfigurationService
	background    *workers.Workers

	watchInterval time.Duration
	newTicker     workers.TickerFactory

	out io.Writer

	logger *logger.Logger
}

type AppOption func(*App)

// WithTickerFactory replaces the ticker driving the watch loop.
func WithTickerFactory(factory workers.TickerFactory) AppOption {
	return func(a *App) { a.newTicker = factory }
}

// NewApp builds the client application. background holds the workers that
// live as long as Run, such as the token refresher; it may be nil.
func NewApp(services *service.ClientServices, background *workers.Workers, cfg config.ClientWorkers, out io.Writer, logger *logger.Logger, opts ...AppOption) (*App, error) {
	if services == nil || services.ConfigurationService == nil {
		return nil, ErrNoServices
	}
	if background == nil {
		background = workers.New()
	}

	app := &App{
		configuration: services.ConfigurationService,
		background:    background,
		watchInterval: cfg.WatchInterval,
		newTicker:     workers.NewTimeTicker,
		out:           out,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// Run prints the configuration once and returns the fetch error, if any.
// In watch mode fetch errors are logged and Run returns nil once ctx is
// done.
func (a *App) Run(ctx context.Context) error {
	a.background.Start(ctx)
	defer a.background.Stop()

	err := a.refresh(ctx)
	if a.watchInterval <= 0 {
		return err
	}

	a.logger.Info().Dur("interval", a.watchInterval).Msg("watching configuration")
	watch := workers.NewPeriodic(a.watchInterval, func(ctx context.Context) {
		_ = a.refresh(ctx)
	}, workers.WithTickerFactory(a.newTicker))

	watch.Start(ctx)
	<-ctx.Done()
	watch.Stop()

	return nil
}

func (a *App) refresh(ctx context.Context) error {
	snapshot, err := a.configuration.Fetch(ctx)
	if err != nil {
		a.logger.Err(err).Msg("could not fetch configuration")
		return err
	}

	_, err = fmt.Fprintln(a.out, RenderSnapshot(snapshot))
	return err
}
