// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid adapter http address")
	ErrRequestFailed  = errors.New("request to server failed")

	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrServerInternal   = errors.New("internal server error")
	ErrUnexpectedStatus = errors.New("unexpected status")
)
