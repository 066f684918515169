// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-openpims/models"
)

// ResourceTypeOther is assumed for requests without an explicit type.
const ResourceTypeOther = "other"

type resourceTypeKey struct{}

// WithResourceType tags the request context with a resource type such as
// "main_frame" or "xmlhttprequest".
func WithResourceType(ctx context.Context, resourceType string) context.Context {
	return context.WithValue(ctx, resourceTypeKey{}, resourceType)
}

// ResourceTypeFrom returns the resource type stored by [WithResourceType].
func ResourceTypeFrom(ctx context.Context) string {
	if rt, ok := ctx.Value(resourceTypeKey{}).(string); ok && rt != "" {
		return rt
	}
	return ResourceTypeOther
}

// matches reports whether a condition matches the request. specificity is
// the length of the matched request domain, 0 when the rule has none.
func matches(cond models.RuleCondition, host, rawURL, resourceType string) (specificity int, ok bool) {
	if len(cond.ResourceTypes) > 0 && !slices.Contains(cond.ResourceTypes, resourceType) {
		return 0, false
	}
	if len(cond.RequestDomains) > 0 {
		specificity, ok = matchDomains(host, cond.RequestDomains)
		if !ok {
			return 0, false
		}
	}
	if !matchURLFilter(cond.URLFilter, rawURL) {
		return 0, false
	}
	return specificity, true
}

// matchDomains matches host against domains, subdomains included.
func matchDomains(host string, domains []string) (int, bool) {
	best, found := 0, false
	for _, d := range domains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			found = true
			best = max(best, len(d))
		}
	}
	return best, found
}

// matchURLFilter implements the urlFilter pattern subset: '*' wildcards, a
// leading '|' or '||' anchor and a trailing '|' anchor. Matching is
// case-insensitive.
func matchURLFilter(filter, rawURL string) bool {
	if filter == "" || filter == "*" {
		return true
	}

	target := strings.ToLower(rawURL)
	filter = strings.ToLower(filter)

	anchorStart := false
	switch {
	case strings.HasPrefix(filter, "||"):
		filter = filter[2:]
		if i := strings.Index(target, "://"); i >= 0 {
			target = target[i+3:]
		}
		anchorStart = true
	case strings.HasPrefix(filter, "|"):
		filter = filter[1:]
		anchorStart = true
	}

	anchorEnd := strings.HasSuffix(filter, "|")
	filter = strings.TrimSuffix(filter, "|")

	return matchParts(strings.Split(filter, "*"), target, anchorStart, anchorEnd)
}

func matchParts(parts []string, target string, anchorStart, anchorEnd bool) bool {
	pos := 0
	last := len(parts) - 1

	for i, part := range parts {
		switch {
		case i == 0 && i == last && anchorStart && anchorEnd:
			return target == part
		case i == 0 && anchorStart:
			if !strings.HasPrefix(target, part) {
				return false
			}
			pos = len(part)
		case i == last && anchorEnd:
			start := len(target) - len(part)
			if start < pos || !strings.HasSuffix(target, part) {
				return false
			}
			pos = len(target)
		default:
			idx := strings.Index(target[pos:], part)
			if idx < 0 {
				return false
			}
			pos += idx + len(part)
		}
	}
	return true
}
