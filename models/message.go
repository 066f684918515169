// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message channel actions.
const (
	ActionLogin   = "login"
	ActionLogout  = "logout"
	ActionStatus  = "status"
	ActionDerive  = "derive"
	ActionObserve = "observe"
	ActionGetURL  = "getUrl"
	ActionSetURL  = "setUrl"
	ActionPage    = "page"
)

// Message is a request sent over the intra-agent message channel.
type Message struct {
	Action    string `json:"action"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	ServerURL string `json:"serverUrl,omitempty"`
	Domain    string `json:"domain,omitempty"`
	URL       string `json:"url,omitempty"`
}

// MessageResponse is the reply to a [Message]: either Success with Data or
// a failure with a sanitized Error message and, for auth failures, Status.
type MessageResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// PageContext describes what a document load of URL carries once the agent
// has observed its host and injected the page.
type PageContext struct {
	URL  string `json:"url"`
	Host string `json:"host"`
	// Header is the x-openpims value the network rules put on the
	// main-frame request.
	Header string `json:"header,omitempty"`
	// Cookie is the x-openpims cookie set for the page host.
	Cookie string `json:"cookie,omitempty"`
	// Rules is the number of dynamic rules installed afterwards.
	Rules int `json:"activeRules"`
}

// Status is the agent state reported by the status action.
type Status struct {
	LoggedIn    bool   `json:"loggedIn"`
	UserID      string `json:"userId,omitempty"`
	AppDomain   string `json:"appDomain,omitempty"`
	Mode        string `json:"mode"`
	ActiveRules int    `json:"activeRules"`
	Observed    int    `json:"observedDomains"`
	Version     string `json:"version,omitempty"`
}
