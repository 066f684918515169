// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/models"
)

// DefaultMaxRules caps the dynamic rule set when no limit is configured.
const DefaultMaxRules = 5000

// MemoryEngine is an in-process [Engine] that can apply its rules to
// outgoing requests.
type MemoryEngine struct {
	maxRules int

	mu    sync.RWMutex
	rules map[int]models.Rule
	order []int
}

// NewMemoryEngine creates an empty engine holding at most maxRules rules.
func NewMemoryEngine(maxRules int) *MemoryEngine {
	if maxRules <= 0 {
		maxRules = DefaultMaxRules
	}
	return &MemoryEngine{
		maxRules: maxRules,
		rules:    make(map[int]models.Rule),
	}
}

// UpdateDynamicRules validates every added rule before changing anything.
func (e *MemoryEngine) UpdateDynamicRules(ctx context.Context, update models.RuleUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, rule := range update.AddRules {
		if err := validateRule(rule); err != nil {
			return err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := maps.Clone(e.rules)
	for _, id := range update.RemoveRuleIDs {
		delete(next, id)
	}
	for _, rule := range update.AddRules {
		if _, exists := next[rule.ID]; exists {
			return fmt.Errorf("%w: %d", ErrDuplicateRuleID, rule.ID)
		}
		next[rule.ID] = cloneRule(rule)
	}
	if len(next) > e.maxRules {
		return fmt.Errorf("%w: %d > %d", ErrRuleLimit, len(next), e.maxRules)
	}

	e.rules = next
	e.order = slices.Sorted(maps.Keys(next))
	return nil
}

// GetDynamicRules returns a copy of the active rules ordered by id.
func (e *MemoryEngine) GetDynamicRules(ctx context.Context) ([]models.Rule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Rule, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, cloneRule(e.rules[id]))
	}
	return out, nil
}

type headerWinner struct {
	rule        models.Rule
	info        models.HeaderInfo
	specificity int
}

// Apply modifies req's headers with every matching rule. Per header the
// rule with the highest priority wins, then the one with the most specific
// request domain, then the lowest id.
func (e *MemoryEngine) Apply(req *http.Request) {
	host := pseudonym.NormalizeHost(req.URL.Host)
	rawURL := req.URL.String()
	resourceType := ResourceTypeFrom(req.Context())

	e.mu.RLock()
	winners := make(map[string]headerWinner)
	for _, id := range e.order {
		rule := e.rules[id]
		specificity, ok := matches(rule.Condition, host, rawURL, resourceType)
		if !ok {
			continue
		}

		for _, info := range rule.Action.RequestHeaders {
			key := http.CanonicalHeaderKey(info.Header)
			current, seen := winners[key]
			if seen && !outranks(rule, specificity, current) {
				continue
			}
			winners[key] = headerWinner{rule: rule, info: info, specificity: specificity}
		}
	}
	e.mu.RUnlock()

	for key, w := range winners {
		switch w.info.Operation {
		case models.HeaderOperationSet:
			req.Header.Set(key, w.info.Value)
		case models.HeaderOperationAppend:
			req.Header.Add(key, w.info.Value)
		case models.HeaderOperationRemove:
			req.Header.Del(key)
		}
	}
}

func outranks(rule models.Rule, specificity int, current headerWinner) bool {
	if rule.Priority != current.rule.Priority {
		return rule.Priority > current.rule.Priority
	}
	return specificity > current.specificity
}

func validateRule(rule models.Rule) error {
	if rule.ID < 1 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRule, rule.ID)
	}
	if rule.Priority < 1 {
		return fmt.Errorf("%w: rule %d: priority must be positive", ErrInvalidRule, rule.ID)
	}
	if rule.Action.Type != models.RuleActionModifyHeaders {
		return fmt.Errorf("%w: rule %d: unsupported action %q", ErrInvalidRule, rule.ID, rule.Action.Type)
	}
	if len(rule.Action.RequestHeaders) == 0 {
		return fmt.Errorf("%w: rule %d: no request headers", ErrInvalidRule, rule.ID)
	}
	for _, h := range rule.Action.RequestHeaders {
		if strings.TrimSpace(h.Header) == "" {
			return fmt.Errorf("%w: rule %d: empty header name", ErrInvalidRule, rule.ID)
		}
		switch h.Operation {
		case models.HeaderOperationSet, models.HeaderOperationAppend:
			if h.Value == "" {
				return fmt.Errorf("%w: rule %d: %s requires a value", ErrInvalidRule, rule.ID, h.Operation)
			}
		case models.HeaderOperationRemove:
		default:
			return fmt.Errorf("%w: rule %d: unknown header operation %q", ErrInvalidRule, rule.ID, h.Operation)
		}
	}
	for _, rt := range rule.Condition.ResourceTypes {
		if !slices.Contains(models.ResourceTypes, rt) {
			return fmt.Errorf("%w: rule %d: unknown resource type %q", ErrInvalidRule, rule.ID, rt)
		}
	}
	return nil
}

func cloneRule(rule models.Rule) models.Rule {
	rule.Action.RequestHeaders = slices.Clone(rule.Action.RequestHeaders)
	rule.Condition.RequestDomains = slices.Clone(rule.Condition.RequestDomains)
	rule.Condition.ResourceTypes = slices.Clone(rule.Condition.ResourceTypes)
	return rule
}
