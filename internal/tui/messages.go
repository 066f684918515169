// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-openpims/models"

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login form's submit command.
type LoginResult struct {
	Status models.Status
	Err    error
}

type statusLoadedMsg struct {
	status models.Status
	err    error
}

type derivedMsg struct {
	pseudonym models.Pseudonym
	err       error
}

type observedMsg struct {
	domain string
	err    error
}

type loggedOutMsg struct{}

type globalURLMsg struct {
	url string
	err error
}

type globalURLSavedMsg struct {
	err error
}
