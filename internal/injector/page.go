// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package injector

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync/atomic"

	"golang.org/x/net/publicsuffix"
)

// ErrInvalidPageURL is returned by [NewPage] for URLs without a host.
var ErrInvalidPageURL = errors.New("invalid page url")

// Doer issues XHR-style requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Page is the context of one loaded document.
type Page struct {
	// URL is the document location.
	URL *url.URL
	// Hostname is the document host the pseudonym is derived for.
	Hostname string
	// Jar is the page cookie store.
	Jar http.CookieJar
	// Fetch sends fetch-style requests.
	Fetch http.RoundTripper
	// XHR sends XMLHttpRequest-style requests.
	XHR Doer

	injected atomic.Bool
}

// NewPage builds a page for rawURL with a public-suffix aware cookie jar
// and the default transport.
func NewPage(rawURL string) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPageURL, err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidPageURL, rawURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	return &Page{
		URL:      u,
		Hostname: u.Hostname(),
		Jar:      jar,
		Fetch:    http.DefaultTransport,
		XHR:      &http.Client{Transport: http.DefaultTransport, Jar: jar},
	}, nil
}

// Client returns an http.Client that sends through the page's fetch
// transport and cookie jar.
func (p *Page) Client() *http.Client {
	return &http.Client{Transport: p.Fetch, Jar: p.Jar}
}

// Cookie returns the value of the named cookie visible to the page host
// over https.
func (p *Page) Cookie(name string) (string, bool) {
	if p.Jar == nil {
		return "", false
	}
	for _, c := range p.Jar.Cookies(secureOrigin(p.Hostname)) {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

func secureOrigin(host string) *url.URL {
	return &url.URL{Scheme: "https", Host: host, Path: "/"}
}
