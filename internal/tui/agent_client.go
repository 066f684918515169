// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/models"
)

// agentClient turns message channel round trips into typed results.
type agentClient struct {
	adapter adapter.AgentAdapter
}

func (c *agentClient) call(ctx context.Context, msg models.Message, out any) error {
	resp, err := c.adapter.Send(ctx, msg)
	if err != nil {
		return err
	}
	if !resp.Success {
		if resp.Error == "" {
			return errors.New("request failed")
		}
		return errors.New(resp.Error)
	}
	if out == nil || resp.Data == nil {
		return nil
	}

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("re-encode %s data: %w", msg.Action, err)
	}
	return json.Unmarshal(raw, out)
}

func (c *agentClient) login(ctx context.Context, serverURL, email, password string) (models.Status, error) {
	var status models.Status
	err := c.call(ctx, models.Message{
		Action:    models.ActionLogin,
		ServerURL: serverURL,
		Email:     email,
		Password:  password,
	}, &status)
	return status, err
}

func (c *agentClient) logout(ctx context.Context) error {
	return c.call(ctx, models.Message{Action: models.ActionLogout}, nil)
}

func (c *agentClient) status(ctx context.Context) (models.Status, error) {
	var status models.Status
	err := c.call(ctx, models.Message{Action: models.ActionStatus}, &status)
	return status, err
}

func (c *agentClient) derive(ctx context.Context, domain string) (models.Pseudonym, error) {
	var p models.Pseudonym
	err := c.call(ctx, models.Message{Action: models.ActionDerive, Domain: domain}, &p)
	return p, err
}

func (c *agentClient) observe(ctx context.Context, domain string) error {
	return c.call(ctx, models.Message{Action: models.ActionObserve, Domain: domain}, nil)
}

func (c *agentClient) globalURL(ctx context.Context) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.call(ctx, models.Message{Action: models.ActionGetURL}, &out)
	return out.URL, err
}

func (c *agentClient) setGlobalURL(ctx context.Context, url string) error {
	return c.call(ctx, models.Message{Action: models.ActionSetURL, URL: url}, nil)
}
