// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "portobello"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())
}

func TestParseToken_Valid(t *testing.T) {
	issued, err := utils.GenerateJWTToken(testIssuer, "user-1", time.Hour, testSignKey)
	require.NoError(t, err)

	got, err := newTestAuthService().ParseToken(context.Background(), issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}

func TestParseToken_Rejected(t *testing.T) {
	wrongKey, err := utils.GenerateJWTToken(testIssuer, "user-1", time.Hour, "other-key")
	require.NoError(t, err)

	wrongIssuer, err := utils.GenerateJWTToken("someone-else", "user-1", time.Hour, testSignKey)
	require.NoError(t, err)

	expired, err := utils.GenerateJWTToken(testIssuer, "user-1", -time.Minute, testSignKey)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"wrong key":    wrongKey.SignedString,
		"wrong issuer": wrongIssuer.SignedString,
		"expired":      expired.SignedString,
		"none alg":     noneAlg,
		"garbage":      "not.a.token",
		"empty":        "",
	}

	svc := newTestAuthService()
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), token)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestParseToken_IssuerCheckDisabled(t *testing.T) {
	issued, err := utils.GenerateJWTToken("any-issuer", "user-2", time.Hour, testSignKey)
	require.NoError(t, err)

	svc := NewAuthService(config.App{TokenSignKey: testSignKey}, logger.Nop())
	got, err := svc.ParseToken(context.Background(), issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "user-2", got.UserID)
}
