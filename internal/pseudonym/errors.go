// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pseudonym

import "errors"

var (
	// ErrCryptoKey is returned when the shared secret cannot be used as HMAC
	// key material.
	ErrCryptoKey = errors.New("invalid crypto key material")

	// ErrInvalidInput is returned when the user id or the domain is empty.
	ErrInvalidInput = errors.New("invalid derivation input")
)
