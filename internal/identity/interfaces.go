// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity obtains and refreshes the access token the client sends
// to the configuration API.
//
// [Client] is passed explicitly to the code that needs it; there is no
// process-wide instance. [TokenRefresher] keeps the token fresh with a single
// cancellable periodic task whose ticker, clock and refresh call can be
// replaced in tests.
package identity

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_mock.go -package=mock

// Client is an OpenID Connect client holding one user session.
type Client interface {
	// Init logs the configured user in and stores the issued tokens.
	Init(ctx context.Context) error

	// UpdateToken refreshes the access token when it expires within
	// minValidity. It reports whether a refresh happened.
	UpdateToken(ctx context.Context, minValidity time.Duration) (bool, error)

	// Token returns the current access token, or "" before Init.
	Token() string

	// ExpiresIn returns the remaining lifetime of the access token at now.
	ExpiresIn(now time.Time) time.Duration
}
