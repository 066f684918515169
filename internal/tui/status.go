// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-openpims/models"
)

var copyToClipboard = clipboard.WriteAll

// StatusModel shows the agent state and derives the pseudonymous URL for a
// domain typed into its input.
type StatusModel struct {
	ctx   context.Context
	agent *agentClient

	domain    textinput.Model
	status    models.Status
	pseudonym models.Pseudonym
	loading   bool
	info      string
	errMsg    string
}

func NewStatusModel(ctx context.Context, agent *agentClient) *StatusModel {
	domain := textinput.New()
	domain.Placeholder = "example.com"
	domain.CharLimit = 253
	domain.Width = 40
	domain.Focus()

	return &StatusModel{ctx: ctx, agent: agent, domain: domain}
}

// Init reloads the status every time the page is opened.
func (m *StatusModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(textinput.Blink, m.cmdStatus())
}

func (m *StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeAgentError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, nil

	case derivedMsg:
		if msg.err != nil {
			m.errMsg = humanizeAgentError(msg.err)
			m.pseudonym = models.Pseudonym{}
			return m, nil
		}
		m.errMsg = ""
		m.info = ""
		m.pseudonym = msg.pseudonym
		return m, nil

	case observedMsg:
		if msg.err != nil {
			m.errMsg = humanizeAgentError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.info = fmt.Sprintf("Rule installed for %s", msg.domain)
		return m, m.cmdStatus()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter):
			domain := strings.TrimSpace(m.domain.Value())
			if domain == "" {
				m.errMsg = "Domain is required"
				return m, nil
			}
			return m, m.cmdDerive(domain)
		case key.Matches(msg, keys.copy):
			if m.pseudonym.FullURL == "" {
				m.errMsg = "Nothing to copy"
				return m, nil
			}
			if err := copyToClipboard(m.pseudonym.FullURL); err != nil {
				m.errMsg = "Clipboard unavailable: " + err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.info = "Copied to clipboard"
			return m, nil
		case key.Matches(msg, keys.observe):
			domain := strings.TrimSpace(m.domain.Value())
			if domain == "" {
				m.errMsg = "Domain is required"
				return m, nil
			}
			return m, m.cmdObserve(domain)
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdStatus()
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.options):
			return m, func() tea.Msg { return NavigateTo{Page: pageOptions} }
		}
	}

	var cmd tea.Cmd
	m.domain, cmd = m.domain.Update(msg)
	return m, cmd
}

func (m *StatusModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n\n")
	}

	state := "logged out"
	if m.status.LoggedIn {
		state = okStyle.Render("logged in")
	}
	b.WriteString(row("State", state))
	b.WriteString(row("User", valueOrDash(m.status.UserID)))
	b.WriteString(row("App domain", valueOrDash(m.status.AppDomain)))
	b.WriteString(row("Mode", valueOrDash(m.status.Mode)))
	b.WriteString(row("Rules", fmt.Sprintf("%d", m.status.ActiveRules)))
	b.WriteString(row("Observed", fmt.Sprintf("%d", m.status.Observed)))
	b.WriteString("\n")
	b.WriteString(row("Domain", m.domain.View()))

	if m.pseudonym.FullURL != "" {
		b.WriteString(row("URL", urlStyle.Render(m.pseudonym.FullURL)))
	}

	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.info))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("OPENPIMS", strings.TrimRight(b.String(), "\n"),
		"enter: derive │ ctrl+y: copy │ ctrl+o: observe │ ctrl+r: refresh │ ctrl+g: options │ ctrl+x: logout")
}

func (m *StatusModel) cmdStatus() tea.Cmd {
	ctx, agent := m.ctx, m.agent
	return func() tea.Msg {
		status, err := agent.status(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m *StatusModel) cmdDerive(domain string) tea.Cmd {
	ctx, agent := m.ctx, m.agent
	return func() tea.Msg {
		p, err := agent.derive(ctx, domain)
		return derivedMsg{pseudonym: p, err: err}
	}
}

func (m *StatusModel) cmdObserve(domain string) tea.Cmd {
	ctx, agent := m.ctx, m.agent
	return func() tea.Msg {
		return observedMsg{domain: domain, err: agent.observe(ctx, domain)}
	}
}

// cmdLogout always ends on the login page: the agent clears what it can
// even when a step fails.
func (m *StatusModel) cmdLogout() tea.Cmd {
	ctx, agent := m.ctx, m.agent
	m.pseudonym = models.Pseudonym{}
	m.info = ""
	m.errMsg = ""
	return func() tea.Msg {
		_ = agent.logout(ctx)
		return loggedOutMsg{}
	}
}
