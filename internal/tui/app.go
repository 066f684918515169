// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-openpims/models"
)

// RootModel is the popup router:
// 1) keeps the active page
// 2) handles the global quit and about hotkeys
// 3) handles NavigateTo messages
// 4) moves between login and status as the session changes
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	page    string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		page:      startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.version):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(k, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav)
	}

	switch result := msg.(type) {
	case LoginResult:
		if result.Err == nil {
			if r.current != nil {
				r.pages[r.page], _ = r.current.Update(result)
			}
			return r.navigate(NavigateTo{Page: pageStatus, Payload: statusLoadedMsg{status: result.Status}})
		}
	case loggedOutMsg:
		return r.navigate(NavigateTo{Page: pageLogin})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.page] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.page = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("OPENPIMS", "", "")
	}
	return r.current.View()
}
