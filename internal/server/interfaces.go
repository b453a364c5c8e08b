// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives
	// and then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests, up to the configured shutdown timeout.
	Shutdown()
}
