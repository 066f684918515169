// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapAuthError returns nil for 2xx responses and an [*AuthHTTPError] with a
// human-readable message otherwise.
func mapAuthError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &AuthHTTPError{Status: resp.StatusCode(), Message: authStatusMessage(resp.StatusCode())}
}

func authStatusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Invalid credentials"
	case http.StatusForbidden:
		return "Access forbidden"
	case http.StatusNotFound:
		return "Service unreachable"
	case http.StatusInternalServerError:
		return "Server error"
	default:
		return fmt.Sprintf("Login failed: %s", http.StatusText(status))
	}
}
