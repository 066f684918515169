// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
)

const defaultShutdownTimeout = 5 * time.Second

type httpServer struct {
	server          *http.Server
	listener        net.Listener
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer binds address immediately so a port conflict fails agent
// startup instead of surfacing later.
func NewServer(handler http.Handler, address string, shutdownTimeout time.Duration, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errNoAddress
	}
	if handler == nil {
		return nil, errNoHandler
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	logger.Info().Str("address", listener.Addr().String()).Msg("message channel listener bound")

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		listener:        listener,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *httpServer) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *httpServer) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.Serve(s.listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("message channel shutdown")
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info().Msg("message channel shut down gracefully")
	return nil
}
