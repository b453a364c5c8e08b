// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/mock"
	"github.com/MKhiriev/portobello/internal/service"
	"github.com/MKhiriev/portobello/internal/workers"
	"github.com/MKhiriev/portobello/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeTicker struct {
	ch chan time.Time
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               {}

// recordingWorker records Start and Stop calls in order.
type recordingWorker struct {
	mu     sync.Mutex
	events []string
}

func (w *recordingWorker) Start(context.Context) { w.record("start") }
func (w *recordingWorker) Stop()                 { w.record("stop") }

func (w *recordingWorker) record(event string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, event)
}

// lockedBuffer lets the watch goroutine and the test share the output.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestApp(t *testing.T, watch time.Duration, opts ...AppOption) (*App, *mock.MockClientConfigurationService, *recordingWorker, *lockedBuffer) {
	t.Helper()

	configuration := mock.NewMockClientConfigurationService(gomock.NewController(t))
	worker := &recordingWorker{}
	out := &lockedBuffer{}

	app, err := NewApp(
		&service.ClientServices{ConfigurationService: configuration},
		workers.New(worker),
		config.ClientWorkers{WatchInterval: watch},
		out,
		logger.Nop(),
		opts...,
	)
	require.NoError(t, err)

	return app, configuration, worker, out
}

func TestNewApp_NoServices(t *testing.T) {
	_, err := NewApp(nil, nil, config.ClientWorkers{}, &bytes.Buffer{}, logger.Nop())
	require.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, nil, config.ClientWorkers{}, &bytes.Buffer{}, logger.Nop())
	require.ErrorIs(t, err, ErrNoServices)
}

func TestRun_Once(t *testing.T) {
	app, configuration, worker, out := newTestApp(t, 0)
	configuration.EXPECT().Fetch(gomock.Any()).Return(testSnapshot(), nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "system.enabled.code")
	assert.Equal(t, []string{"start", "stop"}, worker.events)
}

func TestRun_OnceFetchFails(t *testing.T) {
	app, configuration, worker, out := newTestApp(t, 0)
	configuration.EXPECT().Fetch(gomock.Any()).Return(models.Snapshot{}, service.ErrFetchFailed)

	err := app.Run(context.Background())

	require.ErrorIs(t, err, service.ErrFetchFailed)
	assert.Empty(t, out.String())
	assert.Equal(t, []string{"start", "stop"}, worker.events)
}

func TestRun_Watch(t *testing.T) {
	ticker := &fakeTicker{ch: make(chan time.Time)}
	var gotInterval time.Duration
	app, configuration, worker, out := newTestApp(t, 30*time.Second, WithTickerFactory(func(interval time.Duration) workers.Ticker {
		gotInterval = interval
		return ticker
	}))

	stale := testSnapshot()
	stale.Stale = true

	fetched := make(chan struct{}, 4)
	gomock.InOrder(
		configuration.EXPECT().Fetch(gomock.Any()).Return(models.Snapshot{}, service.ErrFetchFailed),
		configuration.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) (models.Snapshot, error) {
			fetched <- struct{}{}
			return stale, nil
		}),
		configuration.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) (models.Snapshot, error) {
			fetched <- struct{}{}
			return testSnapshot(), nil
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	for i := 0; i < 2; i++ {
		ticker.ch <- time.Now()
		select {
		case <-fetched:
		case <-time.After(time.Second):
			t.Fatal("configuration was not re-fetched")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}

	assert.Equal(t, 30*time.Second, gotInterval)
	assert.Equal(t, 1, strings.Count(out.String(), "server unreachable"))
	assert.Equal(t, 2, strings.Count(out.String(), "system.enabled.code"))
	assert.Equal(t, []string{"start", "stop"}, worker.events)
}
