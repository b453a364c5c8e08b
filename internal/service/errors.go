// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrConfigurationTypeNotFound = errors.New("configuration type not found")
	ErrConfigurationKeyNotFound  = errors.New("configuration key not found")
	ErrParsingValue              = errors.New("could not parse configuration value")
	ErrInvalidStoredEntry        = errors.New("stored configuration entry is invalid")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrSeedingFailed = errors.New("seeding default configuration failed")
	ErrFetchFailed   = errors.New("fetching configuration failed")
	ErrInvalidRemote = errors.New("server returned invalid configuration")
)
