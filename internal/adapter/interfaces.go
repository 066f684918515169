// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-openpims/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter exchanges user credentials for an identity triple.
type AuthAdapter interface {
	// Login sends a basic-auth GET to serverURL.
	Login(ctx context.Context, email, password, serverURL string) (models.Identity, error)
}

// AgentAdapter sends messages to the agent message channel.
type AgentAdapter interface {
	Send(ctx context.Context, msg models.Message) (models.MessageResponse, error)
}
