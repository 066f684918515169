// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/utils"
	"github.com/MKhiriev/go-openpims/models"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the resty implementation of [AuthAdapter].
// Every request is bounded by timeout.
func NewHTTPAuthAdapter(timeout time.Duration, logger *logger.Logger) AuthAdapter {
	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &httpAuthAdapter{client: client, logger: logger}
}

// Login implements [AuthAdapter]. Non-2xx responses become
// [*AuthHTTPError]; 2xx bodies must carry userId, token and domain.
func (h *httpAuthAdapter) Login(ctx context.Context, email, password, serverURL string) (models.Identity, error) {
	target, err := validateServerURL(serverURL)
	if err != nil {
		return models.Identity{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(email, password).
		SetHeader("Accept", "application/json").
		Get(target)
	if err != nil {
		h.logger.Err(err).Str("func", "httpAuthAdapter.Login").Str("server", target).Msg("login request failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if err = mapAuthError(resp); err != nil {
		return models.Identity{}, err
	}

	return parseIdentity(resp.Body())
}

func validateServerURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidServerURL, raw)
	}
	return u.String(), nil
}

// parseIdentity decodes a login body whatever its content type; legacy
// endpoints answer with JSON served as text. The body must hold exactly one
// JSON value.
func parseIdentity(body []byte) (models.Identity, error) {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.Identity{}, fmt.Errorf("%w: trailing data after json body", ErrMalformedResponse)
	}

	identity := models.Identity{
		UserID: stringField(fields, "userId"),
		Token:  stringField(fields, "token"),
		Domain: stringField(fields, "domain"),
	}
	if !identity.Complete() {
		return models.Identity{}, ErrInvalidResponse
	}

	return identity, nil
}

// stringField accepts strings and numbers; anything else is missing.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
