// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/internal/service"
	"github.com/MKhiriev/go-openpims/internal/utils"
	"github.com/MKhiriev/go-openpims/models"
)

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var msg models.Message
	if err := utils.DecodeJSON(w, r, &msg); err != nil {
		log.Err(err).Str("func", "*Handler.handleMessage").Msg("undecodable message")
		h.writeError(w, ErrInvalidMessage)
		return
	}

	start := time.Now()
	data, err := h.dispatch(r, msg)
	h.recorder.ObserveMessage(msg.Action, time.Since(start))

	if err != nil {
		log.Err(err).Str("func", "*Handler.handleMessage").Str("action", msg.Action).Msg("message failed")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Data: data}, http.StatusOK)
}

func (h *Handler) dispatch(r *http.Request, msg models.Message) (any, error) {
	ctx := r.Context()

	switch msg.Action {
	case models.ActionLogin:
		return h.services.Auth.Login(ctx, msg.Email, msg.Password, msg.ServerURL)

	case models.ActionLogout:
		h.services.Auth.Logout(ctx)
		return nil, nil

	case models.ActionStatus:
		return h.services.Auth.Status(ctx)

	case models.ActionDerive:
		p, err := h.services.Auth.PseudonymFor(ctx, msg.Domain)
		if err != nil {
			return nil, err
		}
		return p, nil

	case models.ActionObserve:
		host := pseudonym.NormalizeHost(msg.Domain)
		if host == "" {
			return nil, ErrEmptyDomain
		}
		return nil, h.services.Rules.Observe(ctx, host)

	case models.ActionGetURL:
		u, err := h.services.Rules.GlobalURL(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]string{"url": u}, nil

	case models.ActionSetURL:
		return nil, h.services.Rules.SetGlobalURL(ctx, msg.URL)

	case models.ActionPage:
		return h.services.Pages.Open(ctx, msg.URL)

	default:
		return nil, ErrUnknownAction
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, message := errorResponse(err)

	resp := models.MessageResponse{Success: false, Error: message}
	var loginErr *service.LoginError
	if errors.As(err, &loginErr) {
		resp.Status = loginErr.Status
	}

	utils.WriteJSON(w, resp, status)
}
