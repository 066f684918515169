// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RuleActionModifyHeaders is the only rule action type the agent installs.
const RuleActionModifyHeaders = "modifyHeaders"

// Header operations of a modifyHeaders action.
const (
	HeaderOperationSet    = "set"
	HeaderOperationAppend = "append"
	HeaderOperationRemove = "remove"
)

// ResourceTypes lists every request resource type a rule may be scoped to.
var ResourceTypes = []string{
	"main_frame",
	"sub_frame",
	"stylesheet",
	"script",
	"image",
	"font",
	"object",
	"xmlhttprequest",
	"ping",
	"csp_report",
	"media",
	"websocket",
	"webtransport",
	"webbundle",
	"other",
}

// Rule is a declarative network-layer instruction for the rule engine.
type Rule struct {
	// ID is a small positive integer; at most one active rule per ID.
	ID int `json:"id"`

	// Priority decides which rule wins when several match the same header.
	Priority int `json:"priority"`

	// Action describes what to do with a matching request.
	Action RuleAction `json:"action"`

	// Condition describes which requests the rule matches.
	Condition RuleCondition `json:"condition"`
}

// RuleAction is what the engine does with a matching request.
type RuleAction struct {
	Type           string       `json:"type"`
	RequestHeaders []HeaderInfo `json:"requestHeaders,omitempty"`
}

// HeaderInfo is a single request-header modification.
type HeaderInfo struct {
	Header    string `json:"header"`
	Operation string `json:"operation"`
	Value     string `json:"value,omitempty"`
}

// RuleCondition selects the requests a rule applies to.
type RuleCondition struct {
	// URLFilter is a pattern with '*' wildcards; "*" matches every URL.
	URLFilter string `json:"urlFilter,omitempty"`

	// RequestDomains restricts the rule to requests for these hostnames.
	RequestDomains []string `json:"requestDomains,omitempty"`

	// ResourceTypes restricts the rule to these resource types.
	ResourceTypes []string `json:"resourceTypes,omitempty"`
}

// RuleUpdate is one atomic change to the dynamic rule set: the listed IDs
// are removed and then the listed rules are added.
type RuleUpdate struct {
	RemoveRuleIDs []int  `json:"removeRuleIds,omitempty"`
	AddRules      []Rule `json:"addRules,omitempty"`
}
