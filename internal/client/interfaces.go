// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client application.
type Client interface {
	// Run executes the configured command and blocks until it finishes.
	Run(ctx context.Context) error
}

// UI is the interactive popup.
type UI interface {
	Run(ctx context.Context) error
}
