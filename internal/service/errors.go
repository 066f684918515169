// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrSaveCredentials     = errors.New("error saving credentials")
)

// LoginError is the sanitized form of a failed login: a message fit for the
// popup and the auth server status, if there was one. The cause stays
// reachable through [errors.Unwrap] for logging only.
type LoginError struct {
	Message string
	Status  int

	cause error
}

func (e *LoginError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *LoginError) Unwrap() error {
	return e.cause
}
