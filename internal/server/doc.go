// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the configuration API over HTTP.
//
// It owns the listener lifecycle: startup, signal handling and a graceful
// shutdown bounded by the configured shutdown timeout.
package server
