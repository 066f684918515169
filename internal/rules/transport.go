// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"
	"net/http"
)

// HostObserver is notified of the hostname of every outgoing request before
// rules are applied.
type HostObserver interface {
	Observe(ctx context.Context, host string) error
}

// RequestModifier applies header rules to a request.
type RequestModifier interface {
	Apply(req *http.Request)
}

// Transport is an http.RoundTripper that reports each request's host to an
// observer and then applies the engine's header rules to a copy of the
// request. Observer errors never fail the request.
type Transport struct {
	Base     http.RoundTripper
	Observer HostObserver
	Rules    RequestModifier
}

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(base http.RoundTripper, observer HostObserver, rules RequestModifier) *Transport {
	return &Transport{Base: base, Observer: observer, Rules: rules}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Observer != nil {
		_ = t.Observer.Observe(req.Context(), req.URL.Hostname())
	}

	out := req.Clone(req.Context())
	if out.Header == nil {
		out.Header = make(http.Header)
	}
	if t.Rules != nil {
		t.Rules.Apply(out)
	}

	return t.base().RoundTrip(out)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
