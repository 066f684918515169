// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/utils"
	"github.com/MKhiriev/go-openpims/models"
)

// rulesResponse is the body of GET /api/rules.
type rulesResponse struct {
	Mode     string        `json:"mode"`
	Rules    []models.Rule `json:"rules"`
	Observed []string      `json:"observed"`
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.services.Rules.ActiveRules(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listRules").Msg("listing rules failed")
		h.writeError(w, err)
		return
	}
	if rules == nil {
		rules = []models.Rule{}
	}

	observed := h.services.Rules.Observed()
	if observed == nil {
		observed = []string{}
	}

	utils.WriteJSON(w, rulesResponse{
		Mode:     h.services.Rules.Mode(),
		Rules:    rules,
		Observed: observed,
	}, http.StatusOK)
}
