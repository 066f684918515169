// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"

	"github.com/MKhiriev/go-openpims/models"
)

//go:generate mockgen -source=engine.go -destination=../mock/rules_engine_mock.go -package=mock

// Engine is the declarative rule engine holding the dynamic rule set.
type Engine interface {
	// UpdateDynamicRules removes RemoveRuleIDs and then adds AddRules as one
	// atomic change. On error the rule set is unchanged.
	UpdateDynamicRules(ctx context.Context, update models.RuleUpdate) error
	// GetDynamicRules returns the active rules ordered by id.
	GetDynamicRules(ctx context.Context) ([]models.Rule, error)
}
