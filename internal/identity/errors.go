// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import "errors"

var (
	ErrNotInitialized  = errors.New("identity client is not initialized")
	ErrTokenRequest    = errors.New("token request failed")
	ErrTokenRejected   = errors.New("identity provider rejected the token request")
	ErrInvalidResponse = errors.New("invalid token response")
)
