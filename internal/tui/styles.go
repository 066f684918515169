// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	urlStyle    = lipgloss.NewStyle().Underline(true)
	overlayBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	labelColumn = lipgloss.NewStyle().Width(14)
)
