// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// Server is a listener bound at construction time.
type Server interface {
	// Addr is the bound address; useful when configured with port 0.
	Addr() net.Addr

	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error
}
