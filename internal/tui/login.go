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

const (
	loginFieldServer = iota
	loginFieldEmail
	loginFieldPassword
)

// LoginModel is the login form. It collects server URL, email and password
// and sends the login action to the agent. A [LoginResult] comes back and,
// on success, [RootModel] switches to the status page.
type LoginModel struct {
	ctx   context.Context
	agent *agentClient

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, agent *agentClient) *LoginModel {
	server := textinput.New()
	server.Placeholder = "https://me.openpims.de"
	server.CharLimit = 256
	server.Width = 40
	server.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 256
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		agent:  agent,
		inputs: []textinput.Model{server, email, password},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [LoginResult]: clears submitting state; on error shows the message and
//     clears the password field.
//   - tab / shift+tab: move focus between inputs.
//   - enter: validates the form and dispatches the login command.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		m.errMsg = humanizeAgentError(result.Err)
		m.inputs[loginFieldPassword].Reset()
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(k, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(k, keys.enter):
			if m.submitting {
				return m, nil
			}

			server := strings.TrimSpace(m.inputs[loginFieldServer].Value())
			email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
			password := m.inputs[loginFieldPassword].Value()
			if server == "" || email == "" || password == "" {
				m.errMsg = "Server URL, email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(server, email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(row("Server", m.inputs[loginFieldServer].View()))
	b.WriteString(row("Email", m.inputs[loginFieldEmail].View()))
	b.WriteString(row("Password", m.inputs[loginFieldPassword].View()))

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Login]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("OPENPIMS LOGIN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: login │ ctrl+b: about")
}

func (m *LoginModel) cmdLogin(server, email, password string) tea.Cmd {
	ctx := m.ctx
	agent := m.agent

	return func() tea.Msg {
		status, err := agent.login(ctx, server, email, password)
		return LoginResult{Status: status, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
