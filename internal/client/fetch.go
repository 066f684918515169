// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/internal/injector"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

// FetchResult describes what the page context sent for one document load.
type FetchResult struct {
	// Status is the response status code.
	Status int
	// Header is the x-openpims value on the wire, if any.
	Header string
	// Cookie is the x-openpims cookie sent with the request, if any.
	Cookie string
	// Rules is the number of dynamic rules installed afterwards.
	Rules int
}

// Fetcher loads a URL the way a browser tab would with the extension
// active. The agent observes the host, injects the page and applies its
// rules; the fetcher then sends the request with the header and cookie the
// agent reported.
type Fetcher struct {
	agent  adapter.AgentAdapter
	base   http.RoundTripper
	logger *logger.Logger
}

// NewFetcher uses http.DefaultTransport when base is nil.
func NewFetcher(agent adapter.AgentAdapter, base http.RoundTripper, log *logger.Logger) *Fetcher {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Fetcher{agent: agent, base: base, logger: log}
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (FetchResult, error) {
	page, err := injector.NewPage(rawURL)
	if err != nil {
		return FetchResult{}, err
	}

	pc, err := f.openPage(ctx, rawURL)
	if err != nil {
		return FetchResult{}, err
	}

	wire := &wireRecorder{next: f.base}
	page.Fetch = wire
	if pc.Header != "" {
		page.Fetch = injector.Interceptor{HeaderValue: pc.Header}.WrapFetch(wire)
	}
	if pc.Cookie != "" {
		page.Jar.SetCookies(&url.URL{Scheme: "https", Host: page.Hostname, Path: "/"}, []*http.Cookie{{
			Name:     injector.CookieName,
			Value:    pc.Cookie,
			Path:     "/",
			SameSite: http.SameSiteNoneMode,
			Secure:   true,
		}})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page.URL.String(), nil)
	if err != nil {
		return FetchResult{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := page.Client().Do(req)
	if err != nil {
		return FetchResult{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	header, cookie := wire.last()
	return FetchResult{
		Status: resp.StatusCode,
		Header: header,
		Cookie: cookie,
		Rules:  pc.Rules,
	}, nil
}

func (f *Fetcher) openPage(ctx context.Context, rawURL string) (models.PageContext, error) {
	resp, err := f.agent.Send(ctx, models.Message{Action: models.ActionPage, URL: rawURL})
	if err != nil {
		return models.PageContext{}, err
	}
	if !resp.Success {
		return models.PageContext{}, fmt.Errorf("%w: %s", ErrAgentRejected, resp.Error)
	}

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return models.PageContext{}, fmt.Errorf("%w: %w", ErrUnexpectedReply, err)
	}
	var pc models.PageContext
	if err = json.Unmarshal(raw, &pc); err != nil {
		return models.PageContext{}, fmt.Errorf("%w: %w", ErrUnexpectedReply, err)
	}

	f.logger.Debug().Str("func", "*Fetcher.openPage").Str("host", pc.Host).Int("rules", pc.Rules).Msg("page prepared by agent")
	return pc, nil
}

// wireRecorder sits below every decorator and remembers what the first
// request actually carried.
type wireRecorder struct {
	next http.RoundTripper

	mu     sync.Mutex
	seen   bool
	header string
	cookie string
}

func (w *wireRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	w.mu.Lock()
	if !w.seen {
		w.seen = true
		w.header = req.Header.Get(injector.HeaderName)
		if c, err := req.Cookie(injector.CookieName); err == nil {
			w.cookie = c.Value
		}
	}
	w.mu.Unlock()

	return w.next.RoundTrip(req)
}

func (w *wireRecorder) last() (string, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.header, w.cookie
}
