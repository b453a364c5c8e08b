// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/portobello/internal/config"
	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/utils"
	"github.com/MKhiriev/portobello/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathConfiguration      = "/configuration"
	pathConfigurationKeys  = "/configuration/keys"
	pathConfigurationTypes = "/configuration/types"
	pathVersion            = "/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
// A nil tokens sends every request anonymously.
//
// Returns ErrInvalidAddress if cfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if tokens == nil {
		tokens = Anonymous
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		logger: logger,
	}, nil
}

// normalizeBaseURL accepts "host:port" as well as full URLs and strips the
// trailing slash so paths can be appended.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GetConfiguration(ctx context.Context) (models.EntrySet, error) {
	return get(ctx, h, pathConfiguration, models.DecodeEntrySet)
}

func (h *httpServerAdapter) GetConfigurationKeys(ctx context.Context) (models.KeySet, error) {
	return get(ctx, h, pathConfigurationKeys, models.DecodeKeySet)
}

func (h *httpServerAdapter) GetConfigurationTypes(ctx context.Context) (models.TypeSet, error) {
	return get(ctx, h, pathConfigurationTypes, models.DecodeTypeSet)
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (models.VersionResponse, error) {
	return get(ctx, h, pathVersion, decodeVersion)
}

// get performs an authenticated GET of path and decodes a 2xx body.
func get[T any](ctx context.Context, h *httpServerAdapter, path string, decode func([]byte) (T, error)) (T, error) {
	var zero T

	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request failed")
		return zero, fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	decoded, err := decode(resp.Body())
	if err != nil {
		return zero, fmt.Errorf("decode %s response: %w", path, err)
	}

	return decoded, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := strings.TrimSpace(h.tokens.Token()); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decodeVersion(data []byte) (models.VersionResponse, error) {
	var v models.VersionResponse
	if err := json.Unmarshal(data, &v); err != nil {
		return models.VersionResponse{}, fmt.Errorf("%w: %w", models.ErrMalformedPayload, err)
	}
	return v, nil
}
