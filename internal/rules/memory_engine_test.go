// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-openpims/models"
)

func headerRule(id, priority int, header, op, value string, cond models.RuleCondition) models.Rule {
	return models.Rule{
		ID:       id,
		Priority: priority,
		Action: models.RuleAction{
			Type:           models.RuleActionModifyHeaders,
			RequestHeaders: []models.HeaderInfo{{Header: header, Operation: op, Value: value}},
		},
		Condition: cond,
	}
}

func TestMemoryEngine_UpdateAndGet(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(10)

	require.NoError(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{
		DomainRule(7, 1, "b.test", "https://x.app"),
		DomainRule(3, 1, "a.test", "https://y.app"),
	}}))

	rules, err := e.GetDynamicRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, 3, rules[0].ID)
	assert.Equal(t, 7, rules[1].ID)
}

func TestMemoryEngine_RemoveThenAddReplaces(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(10)

	for _, url := range []string{"https://one.app", "https://two.app"} {
		require.NoError(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{
			RemoveRuleIDs: []int{5},
			AddRules:      []models.Rule{DomainRule(5, 1, "a.test", url)},
		}))
	}

	rules, err := e.GetDynamicRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "https://two.app", rules[0].Action.RequestHeaders[0].Value)
}

func TestMemoryEngine_AddWithoutRemoveIsDuplicate(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(10)
	rule := DomainRule(5, 1, "a.test", "https://one.app")

	require.NoError(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{rule}}))
	err := e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{rule}})
	assert.ErrorIs(t, err, ErrDuplicateRuleID)
}

func TestMemoryEngine_InvalidUpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(10)
	require.NoError(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{DomainRule(1, 1, "a.test", "https://a.app")}}))

	tests := []struct {
		name string
		rule models.Rule
	}{
		{name: "zero id", rule: DomainRule(0, 1, "b.test", "https://b.app")},
		{name: "zero priority", rule: DomainRule(2, 0, "b.test", "https://b.app")},
		{name: "empty value", rule: DomainRule(2, 1, "b.test", "")},
		{name: "unknown op", rule: headerRule(2, 1, "x", "replace", "v", models.RuleCondition{})},
		{name: "empty header", rule: headerRule(2, 1, " ", models.HeaderOperationSet, "v", models.RuleCondition{})},
		{name: "unknown action", rule: models.Rule{ID: 2, Priority: 1, Action: models.RuleAction{Type: "redirect"}}},
		{name: "unknown resource type", rule: headerRule(2, 1, "x", models.HeaderOperationSet, "v", models.RuleCondition{ResourceTypes: []string{"tab"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.UpdateDynamicRules(ctx, models.RuleUpdate{
				RemoveRuleIDs: []int{1},
				AddRules:      []models.Rule{DomainRule(3, 1, "c.test", "https://c.app"), tt.rule},
			})
			assert.ErrorIs(t, err, ErrInvalidRule)

			rules, err := e.GetDynamicRules(ctx)
			require.NoError(t, err)
			require.Len(t, rules, 1)
			assert.Equal(t, 1, rules[0].ID)
		})
	}
}

func TestMemoryEngine_Limit(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(2)

	err := e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{
		DomainRule(1, 1, "a.test", "https://a.app"),
		DomainRule(2, 1, "b.test", "https://b.app"),
		DomainRule(3, 1, "c.test", "https://c.app"),
	}})
	assert.ErrorIs(t, err, ErrRuleLimit)

	rules, err := e.GetDynamicRules(ctx)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestMemoryEngine_GetReturnsCopies(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(0)
	require.NoError(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{DomainRule(1, 1, "a.test", "https://a.app")}}))

	rules, _ := e.GetDynamicRules(ctx)
	rules[0].Action.RequestHeaders[0].Value = "tampered"

	again, _ := e.GetDynamicRules(ctx)
	assert.Equal(t, "https://a.app", again[0].Action.RequestHeaders[0].Value)
}

func TestMemoryEngine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewMemoryEngine(0)

	assert.ErrorIs(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{}), context.Canceled)
	_, err := e.GetDynamicRules(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryEngine_Apply(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(0)
	require.NoError(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{
		GlobalRule("https://global.app", 1),
		DomainRule(10, 1, "example.com", "https://parent.app"),
		DomainRule(11, 1, "shop.example.com", "https://shop.app"),
		headerRule(12, 1, "x-strip", models.HeaderOperationRemove, "", models.RuleCondition{}),
		headerRule(13, 1, "x-extra", models.HeaderOperationAppend, "b", models.RuleCondition{URLFilter: "/api/"}),
		headerRule(14, 1, "x-frame", models.HeaderOperationSet, "yes", models.RuleCondition{ResourceTypes: []string{"main_frame"}}),
	}}))

	tests := []struct {
		name   string
		url    string
		rt     string
		header string
		want   string
	}{
		{name: "global fallback", url: "https://other.test/", header: HeaderName, want: "https://global.app"},
		{name: "domain beats global", url: "https://example.com/", header: HeaderName, want: "https://parent.app"},
		{name: "subdomain inherits parent", url: "https://www.example.com/", header: HeaderName, want: "https://parent.app"},
		{name: "most specific domain wins", url: "https://shop.example.com:8443/", header: HeaderName, want: "https://shop.app"},
		{name: "removed header", url: "https://other.test/", header: "x-strip", want: ""},
		{name: "append on filtered url", url: "https://other.test/api/v1", header: "x-extra", want: "a, b"},
		{name: "resource type mismatch", url: "https://other.test/", rt: "image", header: "x-frame", want: ""},
		{name: "resource type match", url: "https://other.test/", rt: "main_frame", header: "x-frame", want: "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.rt != "" {
				req = req.WithContext(WithResourceType(req.Context(), tt.rt))
			}
			req.Header.Set("x-strip", "secret")
			req.Header.Set("x-extra", "a")

			e.Apply(req)
			assert.Equal(t, tt.want, joinHeader(req.Header.Values(tt.header)))
		})
	}
}

func TestMemoryEngine_ApplyHigherPriorityWins(t *testing.T) {
	ctx := context.Background()
	e := NewMemoryEngine(0)
	require.NoError(t, e.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{
		DomainRule(2, 1, "example.com", "https://low.app"),
		GlobalRule("https://high.app", 5),
	}}))

	req := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	e.Apply(req)
	assert.Equal(t, "https://high.app", req.Header.Get(HeaderName))
}

func joinHeader(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}
