// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-openpims/internal/service"
)

var errorStatusMap = map[error]int{
	ErrUnknownAction:  http.StatusBadRequest,
	ErrInvalidMessage: http.StatusBadRequest,
	ErrEmptyDomain:    http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNotAuthenticated:    http.StatusUnauthorized,
}

// errorResponse maps err to a status code and the message a client may
// see. Anything not listed is reported as an internal error without detail.
func errorResponse(err error) (int, string) {
	var loginErr *service.LoginError
	if errors.As(err, &loginErr) {
		switch loginErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return loginErr.Status, loginErr.Message
		default:
			return http.StatusBadGateway, loginErr.Message
		}
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}

	return http.StatusInternalServerError, "internal error"
}
