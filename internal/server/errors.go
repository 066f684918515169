// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddress = errors.New("no listen address")
	errNoHandler = errors.New("no handler")
)
