// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a parsed identity-provider access token.
//
// It embeds [jwt.Token] for signature inspection and [jwt.RegisteredClaims]
// for the standard claim set. UserID caches the "sub" claim, which is the
// identifier stored in configuration_entries.user_id for overrides.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the subject claim. Empty for tokens that were not parsed.
	UserID string `json:"-"`
}

// GetUserID returns the subject claim, failing when it is missing or empty.
func (t *Token) GetUserID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}
	return subject, nil
}

// ExpiresIn returns how long the token stays valid measured from now.
// A token without an exp claim reports zero.
func (t *Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	return t.ExpiresAt.Sub(now)
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
