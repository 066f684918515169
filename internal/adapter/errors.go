// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidResponse is returned when a 2xx login response lacks any of
	// userId, token or domain.
	ErrInvalidResponse = errors.New("invalid response from auth server")

	// ErrMalformedResponse is returned when a 2xx login response body cannot
	// be parsed at all.
	ErrMalformedResponse = errors.New("malformed response from auth server")

	// ErrServerUnreachable is returned when the auth server cannot be reached.
	ErrServerUnreachable = errors.New("auth server unreachable")

	// ErrInvalidServerURL is returned for an empty or non-absolute server URL.
	ErrInvalidServerURL = errors.New("invalid server url")

	// ErrAgentUnavailable is returned when the agent message channel cannot
	// be reached.
	ErrAgentUnavailable = errors.New("agent unavailable")
)

// AuthHTTPError is a non-2xx login response.
type AuthHTTPError struct {
	Status  int
	Message string
}

func (e *AuthHTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}
