// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the command-line configuration client.
//
// It fetches the configuration once, or on every watch tick, prints it as
// a table and keeps the background workers (token refresh) running for
// the lifetime of the process.
package client
