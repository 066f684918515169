// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package injector

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/internal/store"
)

// CookieName is the cookie carrying the pseudonym URL.
const CookieName = "x-openpims"

// Recorder counts injected pages.
type Recorder interface {
	PageInjected()
}

// Injector applies the pseudonym to page contexts.
type Injector struct {
	creds    store.CredentialStorage
	cache    *pseudonym.Cache
	recorder Recorder
	logger   *logger.Logger
}

// New creates an injector reading credentials from creds and deriving
// through cache. recorder may be nil.
func New(creds store.CredentialStorage, cache *pseudonym.Cache, recorder Recorder, log *logger.Logger) *Injector {
	return &Injector{
		creds:    creds,
		cache:    cache,
		recorder: recorder,
		logger:   log,
	}
}

// Inject runs once per page. With a complete credential record it sets the
// pseudonym cookie for the page host and wraps page.Fetch and page.XHR;
// otherwise the page is left untouched.
func (i *Injector) Inject(ctx context.Context, page *Page) {
	if page == nil || !page.injected.CompareAndSwap(false, true) {
		return
	}

	creds, err := i.creds.LoadCredentials(ctx)
	if err != nil {
		i.logger.Err(err).Str("func", "Injector.Inject").Msg("failed to load credentials")
		return
	}
	if !creds.IsAuthenticated() {
		return
	}

	host := pseudonym.NormalizeHost(page.Hostname)
	if host == "" {
		return
	}

	url, err := i.cache.GetOrDerive(ctx, host, creds.UserID, creds.Secret, creds.AppDomain)
	if err != nil {
		i.logger.Err(err).Str("func", "Injector.Inject").Str("host", host).Msg("failed to derive pseudonym")
		return
	}

	if page.Jar != nil {
		page.Jar.SetCookies(secureOrigin(host), []*http.Cookie{{
			Name:     CookieName,
			Value:    url,
			Path:     "/",
			SameSite: http.SameSiteNoneMode,
			Secure:   true,
		}})
	}

	ic := Interceptor{HeaderValue: url}
	page.Fetch = ic.WrapFetch(page.Fetch)
	page.XHR = ic.WrapXHR(page.XHR)

	if i.recorder != nil {
		i.recorder.PageInjected()
	}
	i.logger.Debug().Str("func", "Injector.Inject").Str("host", host).Msg("page injected")
}
