// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// OptionsModel edits the synced global URL used by the catch-all rule.
type OptionsModel struct {
	ctx   context.Context
	agent *agentClient

	url    textinput.Model
	saved  bool
	errMsg string
}

func NewOptionsModel(ctx context.Context, agent *agentClient) *OptionsModel {
	url := textinput.New()
	url.Placeholder = "https://token.openpims.de"
	url.CharLimit = 2048
	url.Width = 50
	url.Focus()

	return &OptionsModel{ctx: ctx, agent: agent, url: url}
}

func (m *OptionsModel) Init() tea.Cmd {
	m.saved = false
	ctx, agent := m.ctx, m.agent
	return tea.Batch(textinput.Blink, func() tea.Msg {
		url, err := agent.globalURL(ctx)
		return globalURLMsg{url: url, err: err}
	})
}

func (m *OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case globalURLMsg:
		if msg.err != nil {
			m.errMsg = humanizeAgentError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.url.SetValue(msg.url)
		return m, nil

	case globalURLSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeAgentError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.saved = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageStatus} }
		case key.Matches(msg, keys.enter):
			ctx, agent := m.ctx, m.agent
			url := strings.TrimSpace(m.url.Value())
			m.saved = false
			return m, func() tea.Msg {
				return globalURLSavedMsg{err: agent.setGlobalURL(ctx, url)}
			}
		}
	}

	var cmd tea.Cmd
	m.url, cmd = m.url.Update(msg)
	return m, cmd
}

func (m *OptionsModel) View() string {
	var b strings.Builder
	b.WriteString(row("OpenPIMS URL", m.url.View()))

	if m.saved {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("Saved"))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("OPENPIMS OPTIONS", strings.TrimRight(b.String(), "\n"), "enter: save │ esc: back")
}
