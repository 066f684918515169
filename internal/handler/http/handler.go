// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/service"
)

// MessageRecorder observes message handling latency per action.
type MessageRecorder interface {
	ObserveMessage(action string, d time.Duration)
}

type nopMessageRecorder struct{}

func (nopMessageRecorder) ObserveMessage(string, time.Duration) {}

type Handler struct {
	services *service.Services
	metrics  http.Handler
	recorder MessageRecorder
	version  string

	logger *logger.Logger
}

// HandlerOption customizes a [Handler].
type HandlerOption func(*Handler)

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) HandlerOption {
	return func(handler *Handler) {
		handler.metrics = h
	}
}

// WithMessageRecorder reports per-action latency to r.
func WithMessageRecorder(r MessageRecorder) HandlerOption {
	return func(handler *Handler) {
		if r != nil {
			handler.recorder = r
		}
	}
}

// WithVersion sets the build version served on GET /api/version.
func WithVersion(v string) HandlerOption {
	return func(handler *Handler) {
		handler.version = v
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		services: services,
		recorder: nopMessageRecorder{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
