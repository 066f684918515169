// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/utils"
	"github.com/MKhiriev/go-openpims/models"
)

const messagesPath = "/api/messages"

type httpAgentAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAgentAdapter constructs the resty client of the agent message
// channel at address (host:port or URL).
func NewHTTPAgentAdapter(address string, timeout time.Duration, logger *logger.Logger) (AgentAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid agent address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpAgentAdapter{client: client, logger: logger}, nil
}

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

// Send implements [AgentAdapter]. Application failures arrive as a
// response with Success=false; only transport and decoding problems are
// returned as errors.
func (h *httpAgentAdapter) Send(ctx context.Context, msg models.Message) (models.MessageResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(messagesPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpAgentAdapter.Send").Str("action", msg.Action).Msg("message request failed")
		return models.MessageResponse{}, fmt.Errorf("%w: %w", ErrAgentUnavailable, err)
	}

	var out models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("decode %s response (status %d): %w", msg.Action, resp.StatusCode(), err)
	}

	return out, nil
}
