// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-openpims/internal/adapter"
)

// mapLoginError turns an adapter failure into a [*LoginError].
func mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.AuthHTTPError
	switch {
	case errors.As(err, &httpErr):
		return &LoginError{Message: httpErr.Message, Status: httpErr.Status, cause: err}
	case errors.Is(err, adapter.ErrInvalidServerURL):
		return &LoginError{Message: "Invalid server URL", cause: err}
	case errors.Is(err, adapter.ErrServerUnreachable):
		return &LoginError{Message: "Server unreachable", cause: err}
	case errors.Is(err, adapter.ErrInvalidResponse):
		return &LoginError{Message: "Invalid server response", cause: err}
	case errors.Is(err, adapter.ErrMalformedResponse):
		return &LoginError{Message: "Malformed server response", cause: err}
	default:
		return &LoginError{Message: "Login failed", cause: err}
	}
}
