// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const messagesRoute = "/api/messages"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post(messagesRoute, h.handleMessage)
	router.Get("/api/rules", h.listRules)
	router.Get("/api/version", h.getVersion)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
