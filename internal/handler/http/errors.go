// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownAction is returned for a message whose action has no handler.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidMessage is returned when the request body is not a message.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrEmptyDomain is returned for domain-scoped actions without a domain.
	ErrEmptyDomain = errors.New("domain is required")
)
