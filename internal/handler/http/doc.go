// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the configuration REST API on a chi router.
//
// Requests pass through trace id, access logging, gzip and the optional
// identity middleware before reaching the configuration handlers. Every
// non-2xx response carries a JSON [models.ErrorWithMessage] body.
package http
