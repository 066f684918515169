// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-openpims/internal/utils"
	"github.com/MKhiriev/go-openpims/models"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A method the matched route does not serve is answered with a 404 message
// response instead of chi's bare 405, so local pages probing the agent see
// the same shape as every other failure.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			utils.WriteJSON(w, models.MessageResponse{Success: false, Error: "not found"}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
