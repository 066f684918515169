// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/internal/mock"
	"github.com/MKhiriev/go-openpims/models"
)

func newTestAgent(t *testing.T) (*agentClient, *mock.MockAgentAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockAgentAdapter(ctrl)
	return &agentClient{adapter: m}, m
}

func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestAgentClient_Call(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes data into typed result", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, models.Message{Action: models.ActionStatus}).Return(models.MessageResponse{
			Success: true,
			Data:    map[string]any{"loggedIn": true, "userId": "u-1", "mode": "per-domain", "activeRules": 2},
		}, nil)

		status, err := agent.status(ctx)
		require.NoError(t, err)
		assert.True(t, status.LoggedIn)
		assert.Equal(t, "u-1", status.UserID)
		assert.Equal(t, 2, status.ActiveRules)
	})

	t.Run("failure response becomes error", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, gomock.Any()).Return(models.MessageResponse{
			Success: false, Error: "Invalid credentials", Status: 401,
		}, nil)

		_, err := agent.login(ctx, "https://me.openpims.de", "a@b.c", "bad")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("failure without message", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, gomock.Any()).Return(models.MessageResponse{}, nil)

		err := agent.logout(ctx)
		assert.EqualError(t, err, "request failed")
	})

	t.Run("transport error passes through", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, gomock.Any()).Return(models.MessageResponse{}, adapter.ErrAgentUnavailable)

		_, err := agent.globalURL(ctx)
		assert.ErrorIs(t, err, adapter.ErrAgentUnavailable)
	})

	t.Run("getUrl", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, models.Message{Action: models.ActionGetURL}).Return(models.MessageResponse{
			Success: true, Data: map[string]any{"url": "https://x.openpims.de"},
		}, nil)

		url, err := agent.globalURL(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://x.openpims.de", url)
	})
}

func TestHumanizeAgentError(t *testing.T) {
	assert.Equal(t, "", humanizeAgentError(nil))
	assert.Equal(t, "OpenPIMS agent is not running", humanizeAgentError(adapter.ErrAgentUnavailable))
	assert.Equal(t, "OpenPIMS agent did not answer in time", humanizeAgentError(context.DeadlineExceeded))
	assert.Equal(t, "Server unreachable", humanizeAgentError(errors.New("Server unreachable")))
}

func TestLoginModel(t *testing.T) {
	ctx := context.Background()

	t.Run("requires every field", func(t *testing.T) {
		agent, _ := newTestAgent(t)
		lm := NewLoginModel(ctx, agent)

		model, cmd := press(lm, tea.KeyEnter)
		assert.Nil(t, cmd)
		assert.Contains(t, model.View(), "Server URL, email and password are required")
	})

	t.Run("submits and clears password on failure", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, models.Message{
			Action:    models.ActionLogin,
			ServerURL: "https://me.openpims.de",
			Email:     "a@b.c",
			Password:  "pw",
		}).Return(models.MessageResponse{Success: false, Error: "Invalid credentials", Status: 401}, nil)

		var model tea.Model = NewLoginModel(ctx, agent)
		model = typeText(t, model, "https://me.openpims.de")
		model, _ = press(model, tea.KeyTab)
		model = typeText(t, model, "a@b.c")
		model, _ = press(model, tea.KeyTab)
		model = typeText(t, model, "pw")

		model, cmd := press(model, tea.KeyEnter)
		require.NotNil(t, cmd)
		assert.Contains(t, model.View(), "Logging in...")

		result, ok := cmd().(LoginResult)
		require.True(t, ok)
		require.Error(t, result.Err)

		model, _ = model.Update(result)
		lm := model.(*LoginModel)
		assert.Contains(t, lm.View(), "Invalid credentials")
		assert.Empty(t, lm.inputs[loginFieldPassword].Value())
		assert.Equal(t, "a@b.c", lm.inputs[loginFieldEmail].Value())
	})

	t.Run("focus wraps around", func(t *testing.T) {
		agent, _ := newTestAgent(t)
		lm := NewLoginModel(ctx, agent)

		press(lm, tea.KeyShiftTab)
		assert.Equal(t, loginFieldPassword, lm.focus)
		press(lm, tea.KeyTab)
		assert.Equal(t, loginFieldServer, lm.focus)
	})
}

func TestStatusModel(t *testing.T) {
	ctx := context.Background()

	t.Run("derive then copy", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, models.Message{Action: models.ActionDerive, Domain: "example.com"}).Return(models.MessageResponse{
			Success: true,
			Data:    map[string]any{"domain": "example.com", "label": "abc", "url": "https://abc.openpims.de"},
		}, nil)

		var copied string
		orig := copyToClipboard
		copyToClipboard = func(s string) error { copied = s; return nil }
		t.Cleanup(func() { copyToClipboard = orig })

		var model tea.Model = NewStatusModel(ctx, agent)
		model = typeText(t, model, "example.com")

		model, cmd := press(model, tea.KeyEnter)
		require.NotNil(t, cmd)
		model, _ = model.Update(cmd())
		assert.Contains(t, model.View(), "https://abc.openpims.de")

		model, _ = press(model, tea.KeyCtrlY)
		assert.Equal(t, "https://abc.openpims.de", copied)
		assert.Contains(t, model.View(), "Copied to clipboard")
	})

	t.Run("copy without url", func(t *testing.T) {
		agent, _ := newTestAgent(t)
		model, _ := press(NewStatusModel(ctx, agent), tea.KeyCtrlY)
		assert.Contains(t, model.View(), "Nothing to copy")
	})

	t.Run("derive without login shows error", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, gomock.Any()).Return(models.MessageResponse{Success: false, Error: "not authenticated"}, nil)

		var model tea.Model = NewStatusModel(ctx, agent)
		model = typeText(t, model, "example.com")
		model, cmd := press(model, tea.KeyEnter)
		model, _ = model.Update(cmd())
		assert.Contains(t, model.View(), "not authenticated")
	})

	t.Run("observe refreshes status", func(t *testing.T) {
		agent, m := newTestAgent(t)
		gomock.InOrder(
			m.EXPECT().Send(ctx, models.Message{Action: models.ActionObserve, Domain: "example.com"}).
				Return(models.MessageResponse{Success: true}, nil),
			m.EXPECT().Send(ctx, models.Message{Action: models.ActionStatus}).
				Return(models.MessageResponse{Success: true, Data: map[string]any{"loggedIn": true, "activeRules": 1, "observedDomains": 1}}, nil),
		)

		var model tea.Model = NewStatusModel(ctx, agent)
		model = typeText(t, model, "example.com")
		model, cmd := press(model, tea.KeyCtrlO)
		model, cmd = model.Update(cmd())
		assert.Contains(t, model.View(), "Rule installed for example.com")

		require.NotNil(t, cmd)
		model, _ = model.Update(cmd())
		sm := model.(*StatusModel)
		assert.Equal(t, 1, sm.status.ActiveRules)
		assert.True(t, sm.status.LoggedIn)
	})

	t.Run("logout ends logged out even on failure", func(t *testing.T) {
		agent, m := newTestAgent(t)
		m.EXPECT().Send(ctx, models.Message{Action: models.ActionLogout}).Return(models.MessageResponse{}, adapter.ErrAgentUnavailable)

		_, cmd := press(NewStatusModel(ctx, agent), tea.KeyCtrlX)
		_, ok := cmd().(loggedOutMsg)
		assert.True(t, ok)
	})
}

func TestOptionsModel(t *testing.T) {
	ctx := context.Background()
	agent, m := newTestAgent(t)
	m.EXPECT().Send(ctx, models.Message{Action: models.ActionSetURL, URL: "https://t.openpims.de"}).
		Return(models.MessageResponse{Success: true}, nil)

	var model tea.Model = NewOptionsModel(ctx, agent)
	model, _ = model.Update(globalURLMsg{url: "https://old.openpims.de"})
	assert.Equal(t, "https://old.openpims.de", model.(*OptionsModel).url.Value())

	model.(*OptionsModel).url.SetValue("https://t.openpims.de")
	model, cmd := press(model, tea.KeyEnter)
	model, _ = model.Update(cmd())
	assert.Contains(t, model.View(), "Saved")

	_, cmd = press(model, tea.KeyEsc)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageStatus, nav.Page)
}

func TestRootModel(t *testing.T) {
	ctx := context.Background()
	agent, _ := newTestAgent(t)
	build := models.NewAppBuildInfo("1.2.3", "2026-10-16", "abc123")

	root := NewRootModel(map[string]tea.Model{
		pageLogin:   NewLoginModel(ctx, agent),
		pageStatus:  NewStatusModel(ctx, agent),
		pageOptions: NewOptionsModel(ctx, agent),
	}, pageLogin, build)

	t.Run("build info toggle", func(t *testing.T) {
		model, _ := root.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
		assert.Contains(t, model.View(), "1.2.3")
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.Contains(t, model.View(), "OPENPIMS LOGIN")
	})

	t.Run("successful login opens status", func(t *testing.T) {
		model, cmd := root.Update(LoginResult{Status: models.Status{LoggedIn: true, UserID: "u-1"}})
		assert.Equal(t, pageStatus, model.(RootModel).page)
		assert.NotNil(t, cmd)

		model, _ = model.Update(statusLoadedMsg{status: models.Status{LoggedIn: true, UserID: "u-1"}})
		assert.Contains(t, model.View(), "u-1")
	})

	t.Run("failed login stays", func(t *testing.T) {
		model, _ := root.Update(LoginResult{Err: errors.New("Login failed")})
		assert.Equal(t, pageLogin, model.(RootModel).page)
		assert.Contains(t, model.View(), "Login failed")
	})

	t.Run("logout returns to login", func(t *testing.T) {
		model, _ := root.Update(NavigateTo{Page: pageStatus})
		model, _ = model.Update(loggedOutMsg{})
		assert.Equal(t, pageLogin, model.(RootModel).page)
	})

	t.Run("unknown page ignored", func(t *testing.T) {
		model, cmd := root.Update(NavigateTo{Page: "nope"})
		assert.Nil(t, cmd)
		assert.Equal(t, pageLogin, model.(RootModel).page)
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		model, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.True(t, model.(RootModel).quitByUser)
	})
}
