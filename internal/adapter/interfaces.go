// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the client to read the
// configuration API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] without inspecting status
// codes (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404). The server
// message carried in the ErrorWithMessage body is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/portobello/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter reads the configuration API. Every call attaches the
// current bearer token from the adapter's [TokenSource], when there is one.
type ServerAdapter interface {
	// GetConfiguration fetches GET /configuration: the global values of
	// every key plus the caller's overrides.
	GetConfiguration(ctx context.Context) (models.EntrySet, error)

	// GetConfigurationKeys fetches GET /configuration/keys.
	GetConfigurationKeys(ctx context.Context) (models.KeySet, error)

	// GetConfigurationTypes fetches GET /configuration/types.
	GetConfigurationTypes(ctx context.Context) (models.TypeSet, error)

	// GetVersion fetches GET /version.
	GetVersion(ctx context.Context) (models.VersionResponse, error)
}

// TokenSource supplies the bearer token for outgoing requests. An empty
// token sends the request anonymously.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts an ordinary function to [TokenSource].
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string {
	return f()
}

// Anonymous is a TokenSource that never sends a token.
var Anonymous TokenSource = TokenSourceFunc(func() string { return "" })
