// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal popup: a login form, a status and derive
// screen with clipboard copy, and an options page for the global URL.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

const (
	pageLogin   = "login"
	pageStatus  = "status"
	pageOptions = "options"
)

type TUI struct {
	agent     *agentClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(agent adapter.AgentAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{agent: &agentClient{adapter: agent}, buildInfo: buildInfo, logger: log}
}

// Run opens the popup on the status screen when the agent reports a
// session and on the login form otherwise.
func (t *TUI) Run(ctx context.Context) error {
	start := pageLogin
	status, err := t.agent.status(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("initial status failed")
	} else if status.LoggedIn {
		start = pageStatus
	}

	root := t.newRoot(ctx, start)
	_, err = tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (t *TUI) newRoot(ctx context.Context, start string) RootModel {
	pages := map[string]tea.Model{
		pageLogin:   NewLoginModel(ctx, t.agent),
		pageStatus:  NewStatusModel(ctx, t.agent),
		pageOptions: NewOptionsModel(ctx, t.agent),
	}
	return NewRootModel(pages, start, t.buildInfo)
}
