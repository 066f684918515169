// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgs     = errors.New("missing arguments")
	ErrAgentRejected   = errors.New("agent rejected the request")
	ErrUnexpectedReply = errors.New("unexpected agent reply")
)
