// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	copy    key.Binding
	observe key.Binding
	refresh key.Binding
	logout  key.Binding
	options key.Binding
	version key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	observe: key.NewBinding(key.WithKeys("ctrl+o")),
	refresh: key.NewBinding(key.WithKeys("ctrl+r")),
	logout:  key.NewBinding(key.WithKeys("ctrl+x")),
	options: key.NewBinding(key.WithKeys("ctrl+g")),
	version: key.NewBinding(key.WithKeys("ctrl+b")),
}
