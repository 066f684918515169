// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import "errors"

var (
	// ErrRuleInstall wraps every failure to derive or install a rule.
	ErrRuleInstall = errors.New("rule installation failed")

	// ErrInvalidRule is returned by the engine for a malformed rule.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrDuplicateRuleID is returned when an update would leave two rules
	// with the same id.
	ErrDuplicateRuleID = errors.New("duplicate rule id")

	// ErrRuleLimit is returned when an update would exceed the maximum
	// number of dynamic rules.
	ErrRuleLimit = errors.New("dynamic rule limit exceeded")
)
