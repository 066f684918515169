// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package injector

import "net/http"

// HeaderName is the header the interceptors add to every page request.
const HeaderName = "X-OpenPIMS"

// Interceptor decorates page transports with the pseudonym header.
type Interceptor struct {
	HeaderValue string
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// WrapFetch returns a transport that sets the header on a copy of each
// request and delegates to next.
func (ic Interceptor) WrapFetch(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return next.RoundTrip(ic.decorate(req))
	})
}

// WrapXHR returns a Doer that sets the header on a copy of each request and
// delegates to next.
func (ic Interceptor) WrapXHR(next Doer) Doer {
	if next == nil {
		next = http.DefaultClient
	}
	return doerFunc(func(req *http.Request) (*http.Response, error) {
		return next.Do(ic.decorate(req))
	})
}

func (ic Interceptor) decorate(req *http.Request) *http.Request {
	out := req.Clone(req.Context())
	if out.Header == nil {
		out.Header = make(http.Header)
	}
	out.Header.Set(HeaderName, ic.HeaderValue)
	return out
}
