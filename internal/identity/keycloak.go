// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/utils"
)

const tokenPath = "/token"

// tokenResponse is the OpenID Connect token endpoint body.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// errorResponse is the OAuth 2.0 error body.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type session struct {
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

// keycloakClient talks to the realm's openid-connect endpoints with the
// resource owner password grant and the refresh token grant.
type keycloakClient struct {
	client *utils.HTTPClient
	cfg    config.Identity
	now    func() time.Time

	mu      sync.RWMutex
	session session

	logger *logger.Logger
}

// NewKeycloakClient returns a Client for the realm in cfg. The token endpoint
// is {URL}/realms/{Realm}/protocol/openid-connect/token.
func NewKeycloakClient(cfg config.Identity, timeout time.Duration, logger *logger.Logger) (Client, error) {
	base, err := realmURL(cfg)
	if err != nil {
		return nil, err
	}

	return &keycloakClient{
		client: utils.NewHTTPClient(base, timeout),
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}, nil
}

func realmURL(cfg config.Identity) (string, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.URL), "/"))
	if err != nil {
		return "", fmt.Errorf("invalid identity url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid identity url %q: scheme and host are required", cfg.URL)
	}
	if cfg.Realm == "" || cfg.ClientID == "" {
		return "", fmt.Errorf("identity realm and client id are required")
	}

	return u.JoinPath("realms", cfg.Realm, "protocol", "openid-connect").String(), nil
}

func (k *keycloakClient) Init(ctx context.Context) error {
	s, err := k.requestToken(ctx, map[string]string{
		"grant_type": "password",
		"client_id":  k.cfg.ClientID,
		"username":   k.cfg.Username,
		"password":   k.cfg.Password,
		"scope":      "openid",
	})
	if err != nil {
		return err
	}

	k.setSession(s)
	k.logger.Info().Str("username", k.cfg.Username).Time("expires_at", s.expiresAt).Msg("identity client initialized")
	return nil
}

func (k *keycloakClient) UpdateToken(ctx context.Context, minValidity time.Duration) (bool, error) {
	k.mu.RLock()
	current := k.session
	k.mu.RUnlock()

	if current.accessToken == "" {
		return false, ErrNotInitialized
	}
	if current.expiresAt.Sub(k.now()) > minValidity {
		return false, nil
	}

	s, err := k.requestToken(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"client_id":     k.cfg.ClientID,
		"refresh_token": current.refreshToken,
	})
	if err != nil {
		return false, err
	}
	if s.refreshToken == "" {
		s.refreshToken = current.refreshToken
	}

	k.setSession(s)
	return true, nil
}

func (k *keycloakClient) Token() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.session.accessToken
}

func (k *keycloakClient) ExpiresIn(now time.Time) time.Duration {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.session.accessToken == "" {
		return 0
	}
	return k.session.expiresAt.Sub(now)
}

func (k *keycloakClient) setSession(s session) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.session = s
}

// requestToken posts a form to the token endpoint. The access token expiry
// is taken from its exp claim; expires_in is the fallback for opaque tokens.
func (k *keycloakClient) requestToken(ctx context.Context, form map[string]string) (session, error) {
	resp, err := k.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(tokenPath)
	if err != nil {
		return session{}, fmt.Errorf("%w: %w", ErrTokenRequest, err)
	}

	if resp.StatusCode() != http.StatusOK {
		var e errorResponse
		_ = json.Unmarshal(resp.Body(), &e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode())
		}
		return session{}, fmt.Errorf("%w: %d %s: %s", ErrTokenRejected, resp.StatusCode(), e.Error, e.ErrorDescription)
	}

	var body tokenResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return session{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if body.AccessToken == "" {
		return session{}, fmt.Errorf("%w: empty access token", ErrInvalidResponse)
	}

	expiresAt, err := utils.ExpiryFromJWT(body.AccessToken)
	if err != nil {
		if body.ExpiresIn <= 0 {
			return session{}, fmt.Errorf("%w: no token expiry: %w", ErrInvalidResponse, err)
		}
		expiresAt = k.now().Add(time.Duration(body.ExpiresIn) * time.Second)
	}

	return session{
		accessToken:  body.AccessToken,
		refreshToken: body.RefreshToken,
		expiresAt:    expiresAt,
	}, nil
}
